// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CACHE_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeoutDuration())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("CACHE_DRIVER", "memory")
	t.Setenv("CACHE_TTL", "30")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTLDuration())
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment: "development",
			Database:    DatabaseConfig{Driver: "mysql"},
			Cache:       CacheConfig{Driver: "none"},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Database.Driver = "sqlserver"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Cache.Driver = "memcached"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Environment = "production"
	assert.EqualError(t, cfg.Validate(), "database password is required in production")

	cfg.Database.Password = "secret"
	assert.EqualError(t, cfg.Validate(), "JWT secret key is required in production")

	cfg.JWT.SecretKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Environment = "production"
	cfg.Database.Driver = "sqlite"
	cfg.JWT.SecretKey = "k"
	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	mysql := DatabaseConfig{Driver: "mysql", User: "root", Password: "pw", Host: "db", Port: "3306", Database: "shop"}
	assert.Equal(t, "root:pw@tcp(db:3306)/shop?charset=utf8mb4&parseTime=True&loc=UTC", mysql.DSN())

	pg := DatabaseConfig{Driver: "postgres", User: "u", Password: "p", Host: "h", Port: "5432", Database: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", pg.DSN())

	lite := DatabaseConfig{Driver: "sqlite", Database: "shop.db", Params: "_busy_timeout=5000"}
	assert.Equal(t, "shop.db?_busy_timeout=5000", lite.DSN())

	redis := RedisConfig{Host: "cache", Port: "6380"}
	assert.Equal(t, "cache:6380", redis.Addr())
}
