package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Remote  RemoteConfig   `mapstructure:"remote"`
	Server  ServerConfig   `mapstructure:"server"`
	Log     LogConfig      `mapstructure:"log"`
	Doctors []DoctorConfig `mapstructure:"doctors"`
}

// RemoteConfig holds the remote chat endpoint configuration
type RemoteConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LogConfig holds the logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DoctorConfig describes one entry of the configured doctor roster.
type DoctorConfig struct {
	ID          string `mapstructure:"id"`
	DisplayName string `mapstructure:"display_name"`
	Specialty   string `mapstructure:"specialty"`
}

// Load loads the configuration from config.yaml. The file location can be
// overridden with the CONFIG_PATH environment variable.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("remote.timeout", 15*time.Second)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// HistoryDSN returns the sqlite DSN for the transcript mirror. It defaults
// to an in-memory database so chat history does not outlive the process.
func HistoryDSN() string {
	if path := os.Getenv("HISTORY_DB_PATH"); path != "" {
		return "file:" + filepath.Clean(path) + "?_busy_timeout=10000&_fk=1"
	}
	return ":memory:"
}
