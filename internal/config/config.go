package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

type ProductServiceConfig struct {
	BaseAddress string
}

type Config struct {
	App            AppConfig
	Mongo          MongoConfig
	ProductService ProductServiceConfig
}

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	cfg.Mongo.URI = os.Getenv("MONGO_URI")
	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI is required")
	}

	cfg.Mongo.Database = os.Getenv("MONGO_DB")
	if cfg.Mongo.Database == "" {
		return nil, errors.New("MONGO_DB is required")
	}

	cfg.ProductService.BaseAddress = os.Getenv("PRODUCT_SERVICE_BASE_URL")
	if cfg.ProductService.BaseAddress == "" {
		return nil, errors.New("PRODUCT_SERVICE_BASE_URL is required")
	}

	return cfg, nil
}
