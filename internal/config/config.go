package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPort переменная окружения с портом. Её наличие означает, что сервис запущен на хостинге.
const EnvPort = "PORT"

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Documents DocumentsConfig `toml:"documents"`
	Printer   PrinterConfig   `toml:"printer"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	Host            string `toml:"host"`
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`

	// Production выставляется, если порт задан через переменную окружения PORT
	Production bool `toml:"-"`
}

// LogsConfig настройки логирования
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

// StorageConfig пути к файлам и папкам
type StorageConfig struct {
	TemplatePath string `toml:"template_path"`
	GeneratedDir string `toml:"generated_dir"`
	UploadDir    string `toml:"upload_dir"`
	ScratchDir   string `toml:"scratch_dir"`
	CounterFile  string `toml:"counter_file"`
}

// DocumentsConfig настройки жизненного цикла документов
type DocumentsConfig struct {
	CleanupEnabled         bool `toml:"cleanup_enabled"`
	CleanupIntervalMinutes int  `toml:"cleanup_interval_minutes"`
}

// PrinterConfig настройки отправки на печать
type PrinterConfig struct {
	Enabled bool `toml:"enabled"`
	Timeout int  `toml:"timeout"` // в секундах
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			HTTPPort:        5000,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc_booking_docs",
		},
		Storage: StorageConfig{
			TemplatePath: "visa_booking_template.xlsx",
			GeneratedDir: "generated_documents",
			UploadDir:    "uploads",
			CounterFile:  "daily_counters.json",
		},
		Documents: DocumentsConfig{
			CleanupEnabled:         true,
			CleanupIntervalMinutes: 60,
		},
		Printer: PrinterConfig{
			Enabled: true,
			Timeout: 30,
		},
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем файл path (если существует),
// затем переменные окружения (в т.ч. из .env)
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("decode config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	port, ok := os.LookupEnv(EnvPort)
	if !ok || port == "" {
		return nil
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvPort, port)
	}

	c.Server.HTTPPort = p
	c.Server.Production = true
	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Storage.TemplatePath == "" {
		return fmt.Errorf("%w: storage.template_path is required", ErrInvalidConfig)
	}
	if c.Storage.GeneratedDir == "" {
		return fmt.Errorf("%w: storage.generated_dir is required", ErrInvalidConfig)
	}
	if c.Storage.CounterFile == "" {
		return fmt.Errorf("%w: storage.counter_file is required", ErrInvalidConfig)
	}
	if c.Documents.CleanupEnabled && c.Documents.CleanupIntervalMinutes <= 0 {
		return fmt.Errorf("%w: documents.cleanup_interval_minutes must be positive", ErrInvalidConfig)
	}
	return nil
}

// Addr адрес для http.Server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.HTTPPort)
}

// CleanupInterval интервал периодической очистки
func (d DocumentsConfig) CleanupInterval() time.Duration {
	return time.Duration(d.CleanupIntervalMinutes) * time.Minute
}

// ScratchDirOrDefault папка для временных копий шаблона; по умолчанию системная временная папка
func (s StorageConfig) ScratchDirOrDefault() string {
	if s.ScratchDir != "" {
		return s.ScratchDir
	}
	return os.TempDir()
}
