package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	Link       LinkConfig
	Cache      CacheConfig
	Redis      RedisConfig
	Metrics    MetricsConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"localhost"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections  int           `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
)

type DatabaseConfig struct {
	Driver   string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"encly"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"20"`
	Migrate  bool   `env:"DATABASE_MIGRATE" envDefault:"true"`
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL assembled from
// the POSTGRES_* parts.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type AppConfig struct {
	BaseURL     string   `env:"BASE_URL" envDefault:"http://localhost:8080"`
	CORSOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

type LinkConfig struct {
	CodeLength        int `env:"LINK_CODE_LENGTH" envDefault:"6"`
	DefaultTTLDays    int `env:"LINK_DEFAULT_TTL_DAYS" envDefault:"10"`
	MaxCreateAttempts int `env:"LINK_MAX_CREATE_ATTEMPTS" envDefault:"5"`
}

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type CacheConfig struct {
	Backend     string        `env:"CACHE_BACKEND" envDefault:"none"`
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
}

type MetricsConfig struct {
	Enabled        bool   `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int    `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int    `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int    `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	InfraSchedule  string `env:"METRICS_INFRA_SCHEDULE" envDefault:"@every 10s"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
	MaxBatchSize       int    `env:"VALIDATION_MAX_BATCH_SIZE" envDefault:"1000"`
	AllowPrivateIPs    bool   `env:"VALIDATION_ALLOW_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"VALIDATION_MAX_BODY_SIZE" envDefault:"1M"`
}

type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"json"`
	OutputPath string `env:"LOG_FILE"`
	MaxSize    int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAge     int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"false"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already present in the environment win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite, DriverLibSQL:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unsupported CACHE_BACKEND %q", c.Cache.Backend)
	}
	if c.Link.CodeLength < 1 {
		return fmt.Errorf("LINK_CODE_LENGTH must be positive, got %d", c.Link.CodeLength)
	}
	if c.Link.MaxCreateAttempts < 1 {
		return fmt.Errorf("LINK_MAX_CREATE_ATTEMPTS must be positive, got %d", c.Link.MaxCreateAttempts)
	}
	if c.Link.DefaultTTLDays < 0 {
		return fmt.Errorf("LINK_DEFAULT_TTL_DAYS must not be negative, got %d", c.Link.DefaultTTLDays)
	}
	return nil
}
