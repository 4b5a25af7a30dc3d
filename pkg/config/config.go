package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port             int           `yaml:"port" validate:"gt=0,lte=65535"`
		Env              string        `yaml:"env"`
		OperationTimeout time.Duration `yaml:"operation_timeout"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	} `yaml:"log"`
	SQL struct {
		Driver       string `yaml:"driver" validate:"oneof=postgres mysql"`
		DSN          string `yaml:"dsn" validate:"required"`
		MaxOpenConns int    `yaml:"max_open_conns" validate:"gte=0"`
		MaxIdleConns int    `yaml:"max_idle_conns" validate:"gte=0"`
		AutoMigrate  bool   `yaml:"auto_migrate"`
	} `yaml:"sql"`
	Database struct {
		URI        string `yaml:"uri" validate:"required"`
		DBName     string `yaml:"dbname" validate:"required"`
		Collection string `yaml:"collection"`
	} `yaml:"database"`
	Redis struct {
		Host        string        `yaml:"host" validate:"required,hostname|ip"`
		Port        int           `yaml:"port" validate:"required,gt=0,lte=65535"`
		Password    string        `yaml:"password"`
		DB          int           `yaml:"db" validate:"gte=0"`
		TLSEnabled  bool          `yaml:"tls_enabled"`
		TLSCertFile string        `yaml:"tls_cert_file"`
		CacheTTL    time.Duration `yaml:"cache_ttl"`
		LockTTL     time.Duration `yaml:"lock_ttl"`
	} `yaml:"redis"`
	JWT struct {
		Secret string        `yaml:"secret"`
		TTL    time.Duration `yaml:"ttl"`
	} `yaml:"jwt"`
	Reconciler struct {
		Enabled    bool          `yaml:"enabled"`
		Interval   time.Duration `yaml:"interval"`
		StaleAfter time.Duration `yaml:"stale_after"`
		Workers    int           `yaml:"workers" validate:"gte=0"`
		BatchSize  int           `yaml:"batch_size" validate:"gte=0"`
	} `yaml:"reconciler"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and defaults, then validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	if cfg.Redis.TLSEnabled && cfg.Redis.TLSCertFile != "" {
		if _, err := os.Stat(cfg.Redis.TLSCertFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("TLS certificate file does not exist: %s", cfg.Redis.TLSCertFile)
		}
	}
	if cfg.Server.Env == "production" && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}
	// a composed write may run for one operation timeout plus one more for
	// its compensation; the lock and the stale threshold must outlast both
	writeWindow := 2 * cfg.Server.OperationTimeout
	if cfg.Redis.LockTTL <= writeWindow {
		return nil, fmt.Errorf("redis.lock_ttl (%v) must exceed twice server.operation_timeout (%v)", cfg.Redis.LockTTL, cfg.Server.OperationTimeout)
	}
	if cfg.Reconciler.StaleAfter <= writeWindow {
		return nil, fmt.Errorf("reconciler.stale_after (%v) must exceed twice server.operation_timeout (%v)", cfg.Reconciler.StaleAfter, cfg.Server.OperationTimeout)
	}

	return &cfg, nil
}

// Override with environment variables if set
func applyEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Server.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if driver := os.Getenv("SQL_DRIVER"); driver != "" {
		cfg.SQL.Driver = driver
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.SQL.DSN = dsn
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if tlsEnabled := os.Getenv("REDIS_TLS_ENABLED"); tlsEnabled != "" {
		cfg.Redis.TLSEnabled = tlsEnabled == "true"
	}
	if tlsCertFile := os.Getenv("REDIS_TLS_CERT_FILE"); tlsCertFile != "" {
		cfg.Redis.TLSCertFile = tlsCertFile
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	return nil
}

// Set default values
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.OperationTimeout == 0 {
		cfg.Server.OperationTimeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.SQL.Driver == "" {
		cfg.SQL.Driver = "postgres"
	}
	if cfg.SQL.MaxOpenConns == 0 {
		cfg.SQL.MaxOpenConns = 25
	}
	if cfg.SQL.MaxIdleConns == 0 {
		cfg.SQL.MaxIdleConns = 5
	}
	if cfg.Database.Collection == "" {
		cfg.Database.Collection = "property_details"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.CacheTTL == 0 {
		cfg.Redis.CacheTTL = time.Hour
	}
	if cfg.Redis.LockTTL == 0 {
		cfg.Redis.LockTTL = 3 * cfg.Server.OperationTimeout
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 24 * time.Hour
	}
	if cfg.Reconciler.Interval == 0 {
		cfg.Reconciler.Interval = time.Minute
	}
	if cfg.Reconciler.StaleAfter == 0 {
		cfg.Reconciler.StaleAfter = 5 * time.Minute
		if floor := 3 * cfg.Server.OperationTimeout; cfg.Reconciler.StaleAfter < floor {
			cfg.Reconciler.StaleAfter = floor
		}
	}
	if cfg.Reconciler.Workers == 0 {
		cfg.Reconciler.Workers = 4
	}
	if cfg.Reconciler.BatchSize == 0 {
		cfg.Reconciler.BatchSize = 100
	}
}
