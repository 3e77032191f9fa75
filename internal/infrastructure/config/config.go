package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries process configuration, loaded from environment
// variables (a .env file is autoloaded by main via godotenv).

type Config struct {
	Port int

	// Auth token verification. Issuance is external; the API only
	// verifies HS256 bearer tokens signed with this secret.
	JWTSecret string
	ClockSkew time.Duration

	// DynamoDB connection.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	// Object storage for images.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string
}

func Load() Config {
	return Config{
		Port:      getenvInt("PORT", 8080),
		JWTSecret: getenv("JWT_SECRET", "serviciosjt-dev-secret"),
		ClockSkew: time.Duration(getenvInt("JWT_CLOCK_SKEW_SECONDS", 30)) * time.Second,

		AWSRegion:          getenv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getenv("MINIO_BUCKET", "serviciosjt-images"),
		MinioUseSSL:    getenvBool("MINIO_USE_SSL", false),
		MinioPublicURL: os.Getenv("MINIO_PUBLIC_URL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
