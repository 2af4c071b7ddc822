package config

// EnvPrefix namespaces every environment variable the app reads.
const EnvPrefix = "RENTALDESK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv = "RENTALDESK_APP_ENV"
	EnvPort   = "RENTALDESK_APP_PORT"
	EnvDBDSN  = "RENTALDESK_DB_DSN"
	EnvDBHost = "RENTALDESK_DB_HOST"
	EnvDBUser = "RENTALDESK_DB_USER"
	EnvDBName = "RENTALDESK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
