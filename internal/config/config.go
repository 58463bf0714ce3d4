package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Storage drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Identity IdentityConfig `toml:"identity"`
	Engine   EngineConfig   `toml:"engine"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования, пустой File означает stdout
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища смен и бронирований
type StorageConfig struct {
	Driver  string `toml:"driver"`   // file | postgres | memory
	DataDir string `toml:"data_dir"` // каталог для schedules.json и reservations.json
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// IdentityConfig источник ID клиента установки
type IdentityConfig struct {
	File    string `toml:"file"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// EngineConfig настройки движка бронирования
type EngineConfig struct {
	HoldPeriodMinutes int    `toml:"hold_period_minutes"`
	MatchPolicy       string `toml:"match_policy"` // confirmed_only | all
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// HoldPeriod период удержания неподтверждённого бронирования
func (c EngineConfig) HoldPeriod() time.Duration {
	return time.Duration(c.HoldPeriodMinutes) * time.Minute
}

// Policy политика сопоставления бронирований со слотами
func (c EngineConfig) Policy() domain.MatchPolicy {
	return domain.MatchPolicy(c.MatchPolicy)
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "reservation-engine",
		},
		Storage: StorageConfig{
			Driver:  DriverFile,
			DataDir: "data",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "reservations",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Identity: IdentityConfig{
			File:    "assets/client.json",
			Timeout: 5,
		},
		Engine: EngineConfig{
			HoldPeriodMinutes: int(domain.HoldPeriod / time.Minute),
			MatchPolicy:       string(domain.MatchConfirmedOnly),
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// DB_PASSWORD из окружения переопределяет пароль базы
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if password, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile:
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("%w: storage.data_dir is required for file driver", ErrInvalidConfig)
		}
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if !c.Engine.Policy().Valid() {
		return fmt.Errorf("%w: unknown engine.match_policy %q", ErrInvalidConfig, c.Engine.MatchPolicy)
	}

	if c.Engine.HoldPeriodMinutes <= 0 {
		return fmt.Errorf("%w: engine.hold_period_minutes must be positive", ErrInvalidConfig)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}

	return nil
}
