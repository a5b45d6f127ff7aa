package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_Overlays(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9001")
	t.Setenv("DATABASE_DSN", "dsn-from-env")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ACCESS_TOKEN_VALIDITY", "15m")
	t.Setenv("BCRYPT_COST", "11")
	t.Setenv("CORS_ORIGIN", "https://env.example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9001", cfg.EndpointAddr)
	assert.Equal(t, "dsn-from-env", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 11, cfg.BcryptCost)
	assert.Equal(t, "https://env.example.com", cfg.CORSOrigin)
}

func Test_parseEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_VALIDITY", "soon")
	t.Setenv("BCRYPT_COST", "high")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
}
