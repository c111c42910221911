// internal/config/database.go
package config

import (
	"fmt"
	"time"
)

// DSN renders the connection string for the configured driver. For sqlite
// the database name is used as the file path.
func (d *DatabaseConfig) DSN() string {
	switch d.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
		)
		if d.Params != "" {
			dsn += " " + d.Params
		}
		return dsn
	case "sqlite":
		if d.Params != "" {
			return d.Database + "?" + d.Params
		}
		return d.Database
	default:
		params := "charset=utf8mb4&parseTime=True&loc=UTC"
		if d.Params != "" {
			params = d.Params
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", d.User, d.Password, d.Host, d.Port, d.Database, params)
	}
}

func (d *DatabaseConfig) QueryTimeoutDuration() time.Duration {
	return time.Duration(d.QueryTimeout) * time.Second
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
