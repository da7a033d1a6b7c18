package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/config"
)

type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type GRPCConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

type RedisConfig struct {
	Addr         string        `yaml:"addr"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	KeyPrefix    string        `yaml:"key_prefix"`
	FireGuardTTL time.Duration `yaml:"fire_guard_ttl"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type KafkaConfig struct {
	Brokers      []string      `yaml:"brokers"`
	Topic        string        `yaml:"topic"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type SchedulerConfig struct {
	Enabled bool `yaml:"enabled"`
	// TickSpec is the robfig/cron spec of the reminder poll; it must fire at least once a minute
	TickSpec    string        `yaml:"tick_spec"`
	TickTimeout time.Duration `yaml:"tick_timeout"`
	Concurrency int           `yaml:"concurrency"`
	// MissSweepSpec schedules the job that records MISSED logs for finished days
	MissSweepSpec string `yaml:"miss_sweep_spec"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	return LoadFile(getEnv("CONFIG_PATH", "./config/base.yaml"))
}

// LoadFile loads configuration from the given YAML file with environment variable overrides
func LoadFile(configPath string) (*Config, error) {
	provider, err := config.NewYAML(
		config.File(configPath),
		config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create config provider: %w", err)
	}

	cfg := Default()
	if err := provider.Get(config.Root).Populate(cfg); err != nil {
		return nil, fmt.Errorf("failed to populate config: %w", err)
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the values used for keys missing from the YAML file
func Default() *Config {
	return &Config{
		Service: ServiceConfig{Name: "habit-reminder", Environment: "development"},
		GRPC:    GRPCConfig{Port: 50052},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Hour,
			ConnectTimeout:  10 * time.Second,
		},
		Redis: RedisConfig{
			Addr:         "localhost:6379",
			KeyPrefix:    "habit-reminder",
			FireGuardTTL: 48 * time.Hour,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic:        "habit-reminders",
			WriteTimeout: 10 * time.Second,
		},
		Scheduler: SchedulerConfig{
			Enabled:       true,
			TickSpec:      "* * * * *",
			TickTimeout:   50 * time.Second,
			Concurrency:   8,
			MissSweepSpec: "@every 15m",
		},
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Port: 9102, Path: "/metrics"},
	}
}

// Validate checks values the service cannot start without
func (c *Config) Validate() error {
	if c.Database.Database == "" {
		return fmt.Errorf("database.database is required")
	}
	if c.Scheduler.Enabled {
		if c.Scheduler.TickSpec == "" {
			return fmt.Errorf("scheduler.tick_spec is required when the scheduler is enabled")
		}
		if c.Scheduler.TickTimeout <= 0 || c.Scheduler.TickTimeout > time.Minute {
			return fmt.Errorf("scheduler.tick_timeout must be in (0, 1m], got %s", c.Scheduler.TickTimeout)
		}
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when the scheduler is enabled")
		}
	}
	if c.Scheduler.Concurrency <= 0 {
		c.Scheduler.Concurrency = 1
	}
	return nil
}

// overrideFromEnv overrides config values with environment variables if present
func (c *Config) overrideFromEnv() {
	if val := os.Getenv("SERVICE_ENVIRONMENT"); val != "" {
		c.Service.Environment = val
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.GRPC.Port)
	}
	if val := os.Getenv("DATABASE_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DATABASE_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DATABASE_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DATABASE_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DATABASE_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DATABASE_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}
	if val := os.Getenv("DATABASE_AUTO_MIGRATE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Database.AutoMigrate = b
		}
	}
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Redis.Password = val
	}
	if val := os.Getenv("REDIS_DB"); val != "" {
		fmt.Sscanf(val, "%d", &c.Redis.DB)
	}
	if val := os.Getenv("KAFKA_BROKERS"); val != "" {
		c.Kafka.Brokers = strings.Split(val, ",")
	}
	if val := os.Getenv("KAFKA_TOPIC"); val != "" {
		c.Kafka.Topic = val
	}
	if val := os.Getenv("SCHEDULER_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Scheduler.Enabled = b
		}
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Logging.Level = val
	}
}

// GetDSN returns PostgreSQL connection string in URL format for pgx/v5
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.SSLMode,
	)
}

// GetMigrateURL returns the connection string in the scheme golang-migrate's pgx/v5 driver expects
func (c *DatabaseConfig) GetMigrateURL() string {
	return "pgx5" + strings.TrimPrefix(c.GetDSN(), "postgres")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
