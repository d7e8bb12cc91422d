package config

import (
	"os"
	"strconv"
)

// Store driver names accepted in STORE_DRIVER.
const (
	StoreDriverFile  = "file"
	StoreDriverMySQL = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	StoreDriver     string
	StorePath       string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	SwaggerHost     string
	PayoutRecipient string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		StoreDriver:     getEnv("STORE_DRIVER", StoreDriverFile),
		StorePath:       getEnv("STORE_PATH", "data/gigs.json"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/onlydevs?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		PayoutRecipient: getEnv("PAYOUT_RECIPIENT", "0x90479a1128ab97888fDc2507a63C9cb50B3417fb"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
