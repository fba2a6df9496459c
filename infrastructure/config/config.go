package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration. Values are read once at
// process start, never per request.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion        string
	TableName        string
	DynamoDBEndpoint string // local DynamoDB override, empty in real deployments

	// Metrics
	MetricsNamespace string
	EnableMetrics    bool

	// Lambda configuration
	IsLambda bool

	// Logging and features
	LogLevel      string
	EnableTracing bool

	// Local development: back the API with the in-memory store
	UseMemoryStore bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		TableName:        getEnv("TABLE_NAME", "Todos"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "TodoAPI"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", true),
		IsLambda:         os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
		UseMemoryStore:   getEnvBool("USE_MEMORY_STORE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present.
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.TableName == "" {
			return fmt.Errorf("TABLE_NAME is required in production")
		}
		if c.UseMemoryStore {
			return fmt.Errorf("USE_MEMORY_STORE is not allowed in production")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode.
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
