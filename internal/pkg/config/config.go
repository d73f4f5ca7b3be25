package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Inventory InventoryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"true"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"20"`
}

type CacheConfig struct {
	StockTTL time.Duration `envconfig:"CACHE_STOCK_TTL" default:"5m"`
}

// Stock rules are deployment-wide; the threshold is the single source for inventory classification.
type InventoryConfig struct {
	LowStockThreshold int           `envconfig:"INVENTORY_LOW_STOCK_THRESHOLD" default:"10"`
	ReservationTTL    time.Duration `envconfig:"INVENTORY_RESERVATION_TTL" default:"30m"`
	LockTimeout       time.Duration `envconfig:"INVENTORY_LOCK_TIMEOUT" default:"5s"`
	SweepInterval     time.Duration `envconfig:"INVENTORY_SWEEP_INTERVAL" default:"1m"`
	SweepBatchSize    int           `envconfig:"INVENTORY_SWEEP_BATCH_SIZE" default:"100"`
	SweepEnabled      bool          `envconfig:"INVENTORY_SWEEP_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c InventoryConfig) Validate() error {
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("INVENTORY_LOW_STOCK_THRESHOLD must not be negative: %d", c.LowStockThreshold)
	}
	if c.ReservationTTL <= 0 {
		return fmt.Errorf("INVENTORY_RESERVATION_TTL must be positive: %s", c.ReservationTTL)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("INVENTORY_SWEEP_INTERVAL must be positive: %s", c.SweepInterval)
	}
	if c.SweepBatchSize <= 0 {
		return fmt.Errorf("INVENTORY_SWEEP_BATCH_SIZE must be positive: %d", c.SweepBatchSize)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Inventory.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Redis: RedisConfig{
			Enabled: false,
		},
		Cache: CacheConfig{
			StockTTL: time.Minute,
		},
		Inventory: InventoryConfig{
			LowStockThreshold: 10,
			ReservationTTL:    30 * time.Minute,
			LockTimeout:       2 * time.Second,
			SweepInterval:     time.Minute,
			SweepBatchSize:    100,
			SweepEnabled:      false,
		},
	}
}
