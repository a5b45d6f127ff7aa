package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from the process environment.
// A .env file in the working directory is loaded first if present, which is
// how deployments supply the signing secret without putting it on the
// command line. Recognized variables:
//
//	RUN_ADDRESS           HTTP bind address
//	DATABASE_DSN          PostgreSQL DSN
//	SECRET_KEY            JWT HMAC secret
//	ACCESS_TOKEN_VALIDITY token lifetime, e.g. "30m"
//	BCRYPT_COST           bcrypt cost factor
//	CORS_ORIGIN           allowed origins, comma-separated
func parseEnv(config *Config) {
	_ = godotenv.Load() // ok if missing

	if v := os.Getenv("RUN_ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSOrigin = v
	}
}
