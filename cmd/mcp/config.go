package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultRegion = "cn-beijing"

// Config holds environment-based configuration for the Aliyun account
type Config struct {
	AccessKeyID     string
	AccessKeySecret string
	Region          string
}

// LoadConfig reads configuration from a .env file (when present) and
// environment variables. Missing credentials are a fatal startup condition.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	accessKeyID := os.Getenv("ALIYUN_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("ALIYUN_ACCESS_KEY_SECRET")

	if accessKeyID == "" || accessKeySecret == "" {
		return nil, fmt.Errorf("ALIYUN_ACCESS_KEY_ID and ALIYUN_ACCESS_KEY_SECRET must be set")
	}

	return &Config{
		AccessKeyID:     accessKeyID,
		AccessKeySecret: accessKeySecret,
		Region:          getEnvOrDefault("ALIYUN_REGION", defaultRegion),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
