package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const envPrefix = "cms"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" split_words:"true"`
	ReadTimeout     time.Duration `yaml:"readTimeout"     split_words:"true"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"    split_words:"true"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"sslMode"         split_words:"true"`
	Path            string        `yaml:"path"`
	MaxIdleConns    int           `yaml:"maxIdleConns"    split_words:"true"`
	MaxOpenConns    int           `yaml:"maxOpenConns"    split_words:"true"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime" split_words:"true"`
	LogSQL          bool          `yaml:"logSql"          split_words:"true"`
}

type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	Expiration time.Duration `yaml:"expiration"`
}

type LoggingConfig struct {
	Environment string `yaml:"environment"`
	Level       string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Mode:            "release",
			ShutdownTimeout: 5 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			Password:        "postgres",
			Name:            "article",
			SSLMode:         "disable",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: 5 * time.Minute,
		},
		JWT: JWTConfig{
			Secret:     "your-secret-key-change-this-in-production",
			Expiration: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Environment: "development",
			Level:       "info",
		},
	}
}

// LoadConfig layers, in order: defaults, the optional YAML file at
// configFile, a .env file in the working directory, and CMS_* environment
// variables. PORT is honoured for compatibility with container platforms.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret must not be empty")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("jwt expiration must be positive")
	}
	return nil
}

// LogConfig writes the effective configuration with secrets left out.
func LogConfig(cfg *Config, logger *zap.Logger) {
	logger.Info("Application configuration",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.Duration("shutdown_timeout", cfg.Server.ShutdownTimeout),
		zap.String("database_driver", cfg.Database.Driver),
		zap.String("database_host", cfg.Database.Host),
		zap.String("database_name", cfg.Database.Name),
		zap.Duration("jwt_expiration", cfg.JWT.Expiration),
		zap.String("log_environment", cfg.Logging.Environment),
	)
}
