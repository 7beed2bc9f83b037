package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "wordhoard-backend/pkg/errors"
)

// Persistence backends
const (
	PersistenceModeMemory   = "memory"
	PersistenceModeDynamoDB = "dynamodb"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `validate:"required"`
	Environment   string `validate:"oneof=development staging production"`

	// Persistence backend: in-process maps or DynamoDB
	PersistenceMode string `validate:"oneof=memory dynamodb"`

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	EventBusName  string

	// Lambda configuration
	IsLambda bool

	// Admin capability token issued at bootstrap
	AdminToken string

	// Epoch clock: claims reset every EpochDuration
	EpochDuration time.Duration `validate:"gt=0"`

	// Exchange bootstrap
	DefaultFeeRateBps uint64 `validate:"lte=1000"`

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool

	// OTLP collector endpoint, used when tracing is enabled
	TracingEndpoint string

	// Optional path to a JSON overrides file watched for hot reload
	DynamicConfigPath string

	// Optional path to a YAML seed fixture loaded at startup
	SeedPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		PersistenceMode: getEnv("PERSISTENCE_MODE", "memory"),

		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", "wordhoard"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "wordhoard-events"),

		IsLambda: getEnvBool("IS_LAMBDA", false),

		AdminToken: getEnv("ADMIN_TOKEN", "dev-admin-token"),

		EpochDuration:     time.Duration(getEnvInt("EPOCH_DURATION_SECONDS", 86400)) * time.Second,
		DefaultFeeRateBps: uint64(getEnvInt("DEFAULT_FEE_RATE_BPS", 250)),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),

		TracingEndpoint: getEnv("OTLP_ENDPOINT", "localhost:4317"),

		DynamicConfigPath: getEnv("DYNAMIC_CONFIG_PATH", ""),
		SeedPath:          getEnv("SEED_PATH", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.Wrap(err, "invalid configuration")
	}

	if c.Environment == "production" {
		if c.AdminToken == "" || c.AdminToken == "dev-admin-token" {
			return apperrors.NewValidation("ADMIN_TOKEN must be set in production")
		}
		if c.PersistenceMode == PersistenceModeDynamoDB && c.DynamoDBTable == "" {
			return apperrors.NewValidation("TABLE_NAME is required for dynamodb persistence")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
