package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// .env file first when one is present in the working directory. Unset
// variables leave the current values untouched.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	set(&config.EndpointAddrGRPC, "GEOSEEK_GRPC_ADDR")
	set(&config.EndpointAddrAdmin, "GEOSEEK_ADMIN_ADDR")
	set(&config.AdminToken, "GEOSEEK_ADMIN_TOKEN")
	set(&config.DatabaseDSN, "GEOSEEK_DATABASE_DSN")
	set(&config.SecretKey, "GEOSEEK_SECRET_KEY")
	set(&config.S3RootUser, "GEOSEEK_S3_ROOT_USER")
	set(&config.S3RootPassword, "GEOSEEK_S3_ROOT_PASSWORD")
	set(&config.S3Bucket, "GEOSEEK_S3_BUCKET")
	set(&config.S3Region, "GEOSEEK_S3_REGION")
	set(&config.S3BaseEndpoint, "GEOSEEK_S3_BASE_ENDPOINT")
}
