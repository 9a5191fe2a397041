package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
	Mail     MailConfig
	Slack    SlackConfig
	Cron     CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration string
	CookieName string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Timezone       string
	Location       *time.Location
	ClientURL      string
	AllowedOrigins []string
}

type StorageConfig struct {
	Type      string // local | s3
	BasePath  string
	BaseURL   string
	Bucket    string
	Region    string
	PublicURL string
}

// MailConfig selects the outbound transport and its credentials.
type MailConfig struct {
	Driver     string // smtp | ses
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	AdminEmail string
	Region     string
}

type SlackConfig struct {
	Token          string
	InfoChannelID  string
	ErrorChannelID string
}

type CronConfig struct {
	AbsenceJobHour   int
	AbsenceJobMinute int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_backoffice"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("APP_TIMEZONE", "Asia/Kolkata"),
		ClientURL:      getEnv("CLIENT_URL", "http://localhost:3000"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{config.App.ClientURL}
	}

	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET", ""),
		Expiration: getEnv("JWT_EXPIRES_IN", "168h"),
		CookieName: getEnv("JWT_COOKIE_NAME", "token"),
	}

	config.Storage = StorageConfig{
		Type:      getEnv("STORAGE_TYPE", "local"),
		BasePath:  getEnv("STORAGE_BASE_PATH", "uploads"),
		BaseURL:   getEnv("STORAGE_BASE_URL", "/uploads"),
		Bucket:    getEnv("S3_BUCKET", ""),
		Region:    getEnv("AWS_REGION", "ap-south-1"),
		PublicURL: getEnv("S3_PUBLIC_URL", ""),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.Mail = MailConfig{
		Driver:     getEnv("MAIL_DRIVER", "smtp"),
		Host:       getEnv("SMTP_HOST", ""),
		Port:       smtpPort,
		Username:   getEnv("SMTP_USERNAME", ""),
		Password:   getEnv("SMTP_PASSWORD", ""),
		From:       getEnv("MAIL_FROM", "no-reply@techdigi.example"),
		FromName:   getEnv("MAIL_FROM_NAME", "HR Back Office"),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),
		Region:     getEnv("AWS_REGION", "ap-south-1"),
	}

	config.Slack = SlackConfig{
		Token:          getEnv("SLACK_TOKEN", ""),
		InfoChannelID:  getEnv("SLACK_INFO_CHANNEL", ""),
		ErrorChannelID: getEnv("SLACK_ERROR_CHANNEL", ""),
	}

	hour, minute, err := parseClock(getEnv("ABSENCE_JOB_AT", "02:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid ABSENCE_JOB_AT: %w", err)
	}
	config.Cron = CronConfig{AbsenceJobHour: hour, AbsenceJobMinute: minute}

	if param := getEnv("CONFIG_SSM_PARAMETER", ""); param != "" {
		if err := config.applySSMSecrets(param); err != nil {
			return nil, err
		}
	}

	loc, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	config.App.Location = loc

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := time.ParseDuration(c.JWT.Expiration); err != nil {
		return fmt.Errorf("JWT_EXPIRES_IN is invalid: %w", err)
	}
	switch c.Storage.Type {
	case "local":
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_TYPE=s3")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE: %s", c.Storage.Type)
	}
	if c.Mail.Driver != "smtp" && c.Mail.Driver != "ses" {
		return fmt.Errorf("unsupported MAIL_DRIVER: %s", c.Mail.Driver)
	}
	if c.App.Location == nil {
		return fmt.Errorf("APP_TIMEZONE is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// parseClock parses "HH:MM" into hour and minute.
func parseClock(value string) (int, int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
