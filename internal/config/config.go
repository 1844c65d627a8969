package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefix of environment overrides, e.g. QUICO_DATABASE_PASSWORD
const EnvPrefix = "QUICO"

// Config service configuration
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Scheduler   SchedulerConfig   `toml:"scheduler"`
	Events      EventsConfig      `toml:"events"`
	UserService UserServiceConfig `toml:"user_service" split_words:"true"`
	Booking     BookingConfig     `toml:"booking"`
	Payment     PaymentConfig     `toml:"payment"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
	AutoMigrate     bool   `toml:"auto_migrate" split_words:"true"`
}

// DSN lib/pq connection string
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// SchedulerConfig background expiration sweep
type SchedulerConfig struct {
	Enabled    bool   `toml:"enabled"`
	ExpireCron string `toml:"expire_cron" split_words:"true"`
}

// EventsConfig RabbitMQ publisher
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url" envconfig:"URL"`
	Exchange string `toml:"exchange"`
}

type UserServiceConfig struct {
	URL     string `toml:"url" envconfig:"URL"`
	Timeout int    `toml:"timeout"` // seconds
}

// BookingConfig booking engine tunables
type BookingConfig struct {
	SubscriptionHorizonDays int     `toml:"subscription_horizon_days" split_words:"true"`
	SessionsPerMonth        float64 `toml:"sessions_per_month" split_words:"true"`
}

// PaymentConfig bank transfer details shown to customers paying by transfer
type PaymentConfig struct {
	Alias  string `toml:"alias"`
	CBU    string `toml:"cbu" envconfig:"CBU"`
	Bank   string `toml:"bank"`
	Holder string `toml:"holder"`
}

// Load reads the TOML file at path, then .env and QUICO_* environment overrides.
// A missing .env is fine.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFile, path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrEnv, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the service cannot start with
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is empty")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		problems = append(problems, fmt.Sprintf("database.port out of range: %d", c.Database.Port))
	}
	if c.Scheduler.Enabled && strings.TrimSpace(c.Scheduler.ExpireCron) == "" {
		problems = append(problems, "scheduler.expire_cron is empty while the scheduler is enabled")
	}
	if c.Events.Enabled && c.Events.URL == "" {
		problems = append(problems, "events.url is empty while events are enabled")
	}
	if c.Booking.SubscriptionHorizonDays <= 0 {
		problems = append(problems, fmt.Sprintf("booking.subscription_horizon_days must be positive: %d", c.Booking.SubscriptionHorizonDays))
	}
	if c.Booking.SessionsPerMonth <= 0 {
		problems = append(problems, fmt.Sprintf("booking.sessions_per_month must be positive: %v", c.Booking.SessionsPerMonth))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "quico",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "quico-courts",
		},
		Scheduler: SchedulerConfig{
			ExpireCron: "5 0 * * *",
		},
		Events: EventsConfig{
			Exchange: "quico.events",
		},
		UserService: UserServiceConfig{
			Timeout: 5,
		},
		Booking: BookingConfig{
			SubscriptionHorizonDays: 366,
			SessionsPerMonth:        4.33,
		},
	}
}
