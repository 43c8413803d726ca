package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port              string `yaml:"port"`
	EmployeeFile      string `yaml:"employee_file"`
	PayrollFile       string `yaml:"payroll_file"`
	DBPath            string `yaml:"db_path"`
	AdminPassword     string `yaml:"admin_password"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
	JWTSecret         string `yaml:"jwt_secret"`
	TokenExpiry       string `yaml:"token_expiry"`
	LogLevel          string `yaml:"log_level"`
}

var (
	AppConfig Config

	// ErrMissingJWTSecret is returned when the HTTP API is started without JWT_SECRET.
	ErrMissingJWTSecret = errors.New("environment variable JWT_SECRET is required to serve the API")
)

func defaults() Config {
	return Config{
		Port:          "3000",
		EmployeeFile:  "employees.txt",
		PayrollFile:   "payroll.txt",
		DBPath:        "payroll.db",
		AdminPassword: "admin123",
		TokenExpiry:   "24h",
		LogLevel:      "info",
	}
}

// LoadConfig builds AppConfig from defaults, then the YAML file named by
// PAYROLL_CONFIG (if any), then the environment. A .env file in the
// working directory is loaded first when present.
func LoadConfig() error {
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("PAYROLL_CONFIG"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return err
		}
	}

	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.EmployeeFile = getEnvOrDefault("EMPLOYEE_FILE", cfg.EmployeeFile)
	cfg.PayrollFile = getEnvOrDefault("PAYROLL_FILE", cfg.PayrollFile)
	cfg.DBPath = getEnvOrDefault("DB_PATH", cfg.DBPath)
	cfg.AdminPassword = getEnvOrDefault("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.AdminPasswordHash = getEnvOrDefault("ADMIN_PASSWORD_HASH", cfg.AdminPasswordHash)
	cfg.JWTSecret = getEnvOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.TokenExpiry = getEnvOrDefault("TOKEN_EXPIRY", cfg.TokenExpiry)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)

	if _, err := cfg.TokenTTL(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// RequireJWTSecret returns the token signing key. It has no default.
func (c Config) RequireJWTSecret() (string, error) {
	if c.JWTSecret == "" {
		return "", ErrMissingJWTSecret
	}
	return c.JWTSecret, nil
}

// TokenTTL parses TokenExpiry.
func (c Config) TokenTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 0, fmt.Errorf("invalid TOKEN_EXPIRY %q: %w", c.TokenExpiry, err)
	}
	return d, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
