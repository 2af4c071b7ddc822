package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	HTTP          HTTPConfig
	DB            DBConfig
	Redis         RedisConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Rental        RentalConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RENTALDESK_APP_ENV" required:"true"`
	Port         string `envconfig:"RENTALDESK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RENTALDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RENTALDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	// RequestTimeout bounds each request, database calls included. Deadline
	// overruns surface to clients as DEPENDENCY_ERROR.
	RequestTimeout time.Duration `envconfig:"RENTALDESK_HTTP_REQUEST_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	DSN    string `envconfig:"RENTALDESK_DB_DSN"`
	Driver string `envconfig:"RENTALDESK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RENTALDESK_DB_HOST"`
	LegacyPort     int    `envconfig:"RENTALDESK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RENTALDESK_DB_USER"`
	LegacyPassword string `envconfig:"RENTALDESK_DB_PASSWORD"`
	LegacyName     string `envconfig:"RENTALDESK_DB_NAME"`
	LegacySSLMode  string `envconfig:"RENTALDESK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RENTALDESK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RENTALDESK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RENTALDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RENTALDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"RENTALDESK_REDIS_URL"`
	Address      string        `envconfig:"RENTALDESK_REDIS_ADDR"`
	Password     string        `envconfig:"RENTALDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"RENTALDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RENTALDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RENTALDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RENTALDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RENTALDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RENTALDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RENTALDESK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RENTALDESK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RENTALDESK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RENTALDESK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RENTALDESK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"RENTALDESK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginNameLimit  int           `envconfig:"RENTALDESK_AUTH_RATE_LIMIT_LOGIN_NAME_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"RENTALDESK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow    time.Duration `envconfig:"RENTALDESK_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupNameLimit int           `envconfig:"RENTALDESK_AUTH_RATE_LIMIT_SIGNUP_NAME_LIMIT" default:"3"`
	SignupIPLimit   int           `envconfig:"RENTALDESK_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type RentalConfig struct {
	// OverdueDays is the fixed policy threshold for the overdue scan.
	OverdueDays    int  `envconfig:"RENTALDESK_RENTAL_OVERDUE_DAYS" default:"7"`
	DefaultStaffID uint `envconfig:"RENTALDESK_RENTAL_DEFAULT_STAFF_ID" default:"1"`
	DefaultStoreID uint `envconfig:"RENTALDESK_RENTAL_DEFAULT_STORE_ID" default:"1"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"RENTALDESK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
