package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is passed to envconfig; all variables carry explicit names.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Names of environment variables referenced outside struct tags (tests, error text).
const (
	EnvAppEnv    = "LOTORIA_APP_ENV"
	EnvAppPort   = "LOTORIA_APP_PORT"
	EnvDBDSN     = "LOTORIA_DB_DSN"
	EnvDBHost    = "LOTORIA_DB_HOST"
	EnvDBUser    = "LOTORIA_DB_USER"
	EnvDBName    = "LOTORIA_DB_NAME"
	EnvRedisURL  = "LOTORIA_REDIS_URL"
	EnvJWTSecret = "LOTORIA_JWT_SECRET"
	EnvUseSQLite = "LOTORIA_USE_SQLITE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LOTORIA_APP_ENV" required:"true"`
	Port         string `envconfig:"LOTORIA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LOTORIA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOTORIA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LOTORIA_DB_DSN"`
	Driver string `envconfig:"LOTORIA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LOTORIA_DB_HOST"`
	LegacyPort     int    `envconfig:"LOTORIA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LOTORIA_DB_USER"`
	LegacyPassword string `envconfig:"LOTORIA_DB_PASSWORD"`
	LegacyName     string `envconfig:"LOTORIA_DB_NAME"`
	LegacySSLMode  string `envconfig:"LOTORIA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LOTORIA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LOTORIA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LOTORIA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LOTORIA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LOTORIA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LOTORIA_REDIS_ADDR"`
	Password     string        `envconfig:"LOTORIA_REDIS_PASSWORD"`
	DB           int           `envconfig:"LOTORIA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LOTORIA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LOTORIA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LOTORIA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LOTORIA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LOTORIA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"LOTORIA_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"LOTORIA_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"LOTORIA_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"LOTORIA_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LOTORIA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LOTORIA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LOTORIA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LOTORIA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LOTORIA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"LOTORIA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"LOTORIA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"LOTORIA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"LOTORIA_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"LOTORIA_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"LOTORIA_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite    bool `envconfig:"LOTORIA_USE_SQLITE" default:"false"`
	AutoMigrate  bool `envconfig:"LOTORIA_AUTO_MIGRATE" default:"false"`
	SeedDefaults bool `envconfig:"LOTORIA_SEED_DEFAULTS" default:"true"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		if db.DSN == "" {
			db.DSN = "file:lotoria.db?_fk=1"
		}
		db.Driver = "sqlite"
		return nil
	}

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
