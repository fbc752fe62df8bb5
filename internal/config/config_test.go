// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "grocery_admin", cfg.Database.Database)
	assert.Equal(t, 6, cfg.Analytics.TopProducts)
	assert.Equal(t, 10, cfg.Analytics.LowStockThreshold)
	assert.Equal(t, 1.35, cfg.Analytics.AddToCartMultiplier)
	assert.Equal(t, 600, cfg.Redis.CacheTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ANALYTICS_TOP_PRODUCTS", "10")
	t.Setenv("ANALYTICS_ADD_TO_CART_MULTIPLIER", "1.5")
	t.Setenv("DB_NAME", "grocery_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Analytics.TopProducts)
	assert.Equal(t, 1.5, cfg.Analytics.AddToCartMultiplier)
	assert.Equal(t, "grocery_test", cfg.Database.Database)
}

func TestValidateProductionRequiresRealSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_PASSWORD", "secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsZeroTopProducts(t *testing.T) {
	t.Setenv("ANALYTICS_TOP_PRODUCTS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "grocery",
		Password: "pw",
		Database: "grocery_admin",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()

	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=grocery_admin")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.internal", Port: "6379"}
	assert.Equal(t, "cache.internal:6379", cfg.Addr())
}
