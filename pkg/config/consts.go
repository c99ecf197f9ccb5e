package config

const (
	// EnvPrefix scopes every environment variable the service reads.
	EnvPrefix = "CHOCOMARKET"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "CHOCOMARKET_APP_ENV"
	EnvPort     = "CHOCOMARKET_APP_PORT"
	EnvRedisURL = "CHOCOMARKET_REDIS_URL"

	EnvDBDSN  = "CHOCOMARKET_DB_DSN"
	EnvDBHost = "CHOCOMARKET_DB_HOST"
	EnvDBUser = "CHOCOMARKET_DB_USER"
	EnvDBName = "CHOCOMARKET_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
