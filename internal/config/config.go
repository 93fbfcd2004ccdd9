package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	LogLevel  string
	LogFormat string

	MongoURI               string
	DatabaseName           string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	DisconnectTimeout      time.Duration

	BcryptCost int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "dashboard-seeder"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),

		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "json")),

		MongoURI:               strings.TrimSpace(os.Getenv("MONGODB_URI")),
		DatabaseName:           getenv("DATABASE_NAME", "dashboard"),
		ConnectTimeout:         getenvDuration("CONNECT_TIMEOUT", 10*time.Second),
		ServerSelectionTimeout: getenvDuration("SERVER_SELECTION_TIMEOUT", 10*time.Second),
		DisconnectTimeout:      getenvDuration("DISCONNECT_TIMEOUT", 5*time.Second),

		BcryptCost: getenvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
