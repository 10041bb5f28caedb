package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AppEnv string

	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`

	MenuSource      string        `validate:"oneof=file postgres mongo r2"`
	MenuFile        string        `validate:"required_if=MenuSource file"`
	LoadTimeout     time.Duration `validate:"gt=0"`
	DefaultMode     string        `validate:"oneof=safe contains"`
	InferCategories bool

	DatabaseURL string `validate:"required_if=MenuSource postgres"`

	MongoURI        string `validate:"required_if=MenuSource mongo"`
	MongoDatabase   string `validate:"required_if=MenuSource mongo"`
	MongoCollection string `validate:"required_if=MenuSource mongo"`

	R2Endpoint   string `validate:"required_if=MenuSource r2"`
	R2AccessKey  string `validate:"required_if=MenuSource r2"`
	R2SecretKey  string `validate:"required_if=MenuSource r2"`
	R2BucketName string `validate:"required_if=MenuSource r2"`
	R2MenuKey    string `validate:"required_if=MenuSource r2"`

	CORSOrigins []string
}

// Load reads configuration from the environment, loading .env first outside
// production.
func Load() (*Config, error) {
	if os.Getenv(EnvAppEnv) != "production" {
		_ = godotenv.Load()
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from the current environment without validating it.
func FromEnv() *Config {
	return &Config{
		AppEnv: getEnvStr(EnvAppEnv, ""),

		Port:      getEnvStr(EnvPort, DefaultPort),
		LogLevel:  strings.ToLower(getEnvStr(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnvStr(EnvLogFormat, DefaultLogFormat)),

		MenuSource:      strings.ToLower(getEnvStr(EnvMenuSource, DefaultMenuSource)),
		MenuFile:        getEnvStr(EnvMenuFile, DefaultMenuFile),
		LoadTimeout:     getEnvDuration(EnvLoadTimeout, DefaultLoadTimeout),
		DefaultMode:     strings.ToLower(getEnvStr(EnvDefaultMode, DefaultMode)),
		InferCategories: getEnvBool(EnvInferCategories, false),

		DatabaseURL: getEnvStr(EnvDatabaseURL, ""),

		MongoURI:        getEnvStr(EnvMongoURI, ""),
		MongoDatabase:   getEnvStr(EnvMongoDatabase, DefaultMongoDatabase),
		MongoCollection: getEnvStr(EnvMongoCollection, DefaultMongoCollection),

		R2Endpoint:   getEnvStr(EnvR2Endpoint, ""),
		R2AccessKey:  getEnvStr(EnvR2AccessKey, ""),
		R2SecretKey:  getEnvStr(EnvR2SecretKey, ""),
		R2BucketName: getEnvStr(EnvR2BucketName, ""),
		R2MenuKey:    getEnvStr(EnvR2MenuKey, DefaultR2MenuKey),

		CORSOrigins: getEnvList(EnvCORSOrigins, DefaultCORSOrigins),
	}
}

func (cfg *Config) Validate() error {
	var problems []string

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	if port, err := strconv.Atoi(cfg.Port); err == nil && (port < 1 || port > 65535) {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if len(problems) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, p := range problems {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, p)
		}
		return errors.New(errMsg)
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required_if":
		parts := strings.Fields(fe.Param())
		return fmt.Sprintf("%s is required for menu source %q", fe.Field(), parts[len(parts)-1])
	case "required":
		return fmt.Sprintf("%s cannot be empty", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got: %v", fe.Field(), fe.Param(), fe.Value())
	case "numeric":
		return fmt.Sprintf("%s must be numeric, got: %v", fe.Field(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be positive, got: %v", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// LogConfiguration writes the effective configuration with secrets redacted.
func (cfg *Config) LogConfiguration(log *zap.Logger) {
	log.Info("configuration loaded",
		zap.String("app_env", cfg.AppEnv),
		zap.String("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("menu_source", cfg.MenuSource),
		zap.String("menu_file", cfg.MenuFile),
		zap.Duration("load_timeout", cfg.LoadTimeout),
		zap.String("default_mode", cfg.DefaultMode),
		zap.Bool("infer_categories", cfg.InferCategories),
		zap.String("database_url", redactURI(cfg.DatabaseURL)),
		zap.String("mongo_uri", redactURI(cfg.MongoURI)),
		zap.String("r2_bucket", cfg.R2BucketName),
		zap.String("r2_menu_key", cfg.R2MenuKey),
		zap.Bool("r2_secret_set", cfg.R2SecretKey != ""),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)
}

var credentialRegex = regexp.MustCompile(`(://)[^:/@]+:[^@]+@`)

func redactURI(uri string) string {
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
