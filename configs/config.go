package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	Port             string
	DataDir          string
	FrontendURL      string
	StorageNamespace string
	WeeklyGoal       int
	SyncInterval     time.Duration
	R2               R2
}

func LoadConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "3000"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		StorageNamespace: getEnv("STORAGE_NAMESPACE", "social-planner"),
		WeeklyGoal:       getEnvInt("WEEKLY_GOAL", 5),
		SyncInterval:     getEnvDuration("SYNC_INTERVAL", time.Minute),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
