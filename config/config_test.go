package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")
	t.Setenv("UPSTREAM_API_URL", "http://orders.internal")

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, OrderSourceAPI, cfg.OrderSource)
	assert.Equal(t, "http://orders.internal", cfg.UpstreamAPIURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 3, cfg.UpstreamMaxRetries)
	assert.Equal(t, time.Minute, cfg.CacheOrderTTL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")
	t.Setenv("ORDER_SOURCE", OrderSourcePostgres)
	t.Setenv("DB_DSN", "postgres://portal@localhost/erp")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("CACHE_ORDER_TTL", "90s")
	t.Setenv("UPSTREAM_RPS", "2.5")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,172.16.0.1 ")

	cfg := LoadConfig()

	assert.Equal(t, OrderSourcePostgres, cfg.OrderSource)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, 90*time.Second, cfg.CacheOrderTTL)
	assert.Equal(t, 2.5, cfg.UpstreamRPS)
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.1"}, cfg.TrustedProxies)
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("BAD_DURATION", "soon")
	t.Setenv("BAD_INT", "many")
	t.Setenv("BAD_INT32", "99999999999")

	assert.Equal(t, 5*time.Second, getDurationEnv("BAD_DURATION", 5*time.Second))
	assert.Equal(t, 7, getIntEnv("BAD_INT", 7))
	assert.Equal(t, int32(3), getInt32Env("BAD_INT32", 3))
	assert.Equal(t, "x", getEnv("UNSET_KEY_FOR_TEST", "x"))
}
