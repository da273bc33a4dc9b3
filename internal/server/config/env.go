package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration values from environment variables.
// Empty or unset variables leave the current value untouched. The
// entrypoint loads an optional .env file (godotenv) before this runs.
//
// Recognized variables:
//
//	ADDRESS           HTTP bind address
//	DATABASE_DSN      PostgreSQL DSN
//	JWT_SECRET        token signing secret
//	TOKEN_VALIDITY    token lifetime, Go duration string (e.g. "1h")
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&config.EndpointAddrHTTP, "ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.SecretKey, "JWT_SECRET")
	setString(&config.S3RootUser, "S3_ROOT_USER")
	setString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")

	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
