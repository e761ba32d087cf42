package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port   string `yaml:"port" env:"SERVER_PORT"`
		Mode   string `yaml:"mode" env:"SERVER_MODE"`
		WebDir string `yaml:"web_dir" env:"SERVER_WEB_DIR"`
	} `yaml:"server"`

	Storage struct {
		StudentsFile   string `yaml:"students_file" env:"STORAGE_STUDENTS_FILE"`
		AdmissionsFile string `yaml:"admissions_file" env:"STORAGE_ADMISSIONS_FILE"`
		BackupDir      string `yaml:"backup_dir" env:"STORAGE_BACKUP_DIR"`
	} `yaml:"storage"`

	Auth struct {
		JWTSecret         string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
		TokenExpiration   string `yaml:"token_expiration" env:"AUTH_TOKEN_EXPIRATION"`
		Issuer            string `yaml:"issuer" env:"AUTH_ISSUER"`
		AdminUsername     string `yaml:"admin_username" env:"AUTH_ADMIN_USERNAME"`
		AdminPasswordHash string `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.WebDir = "web"

	// Storage defaults
	config.Storage.StudentsFile = "students_data.json"
	config.Storage.AdmissionsFile = "admission_requests.json"
	config.Storage.BackupDir = "backups"

	// Auth defaults
	config.Auth.TokenExpiration = "12h"
	config.Auth.Issuer = "tuitiondesk"
	config.Auth.AdminUsername = "admin"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Storage.StudentsFile == "" {
		return fmt.Errorf("students data file path is required")
	}

	if config.Storage.AdmissionsFile == "" {
		return fmt.Errorf("admissions data file path is required")
	}

	if config.Storage.BackupDir == "" {
		return fmt.Errorf("backup directory is required")
	}

	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("admin password hash is required")
	}

	if _, err := time.ParseDuration(config.Auth.TokenExpiration); err != nil {
		return fmt.Errorf("invalid token expiration format: %w", err)
	}

	return nil
}
