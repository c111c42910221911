// Project Structure Overview
/*
ecom-backend/
├── cmd/
│   ├── server/          HTTP server entry point
│   └── ecomctl/         operator CLI: migrate, stats, token
├── internal/
│   ├── cache/           read-through cache stores (redis, memory, noop)
│   ├── config/          environment configuration
│   ├── database/        connection, pool, migrations
│   ├── handlers/        gin handlers and query-string requests
│   ├── i18n/            embedded message catalogs
│   ├── logging/         logrus setup
│   ├── metrics/         prometheus collectors
│   ├── middleware/      request id, logging, CORS, rate limit, admin guard
│   ├── models/          gorm schema and read models
│   ├── query/           predicate and statement builder
│   ├── router/          route table
│   ├── services/        read services over the catalog, orders and customers
│   ├── testutil/        sqlite test database and fixtures
│   ├── tests/           HTTP suite
│   └── utils/           pagination, responses, validation, jwt
└── go.mod
*/

// Package ecom is a read-only query service over an e-commerce catalog,
// its orders and customers.
package ecom
