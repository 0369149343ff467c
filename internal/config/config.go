package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values
	"time"    // For cache durations

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL  = "mysql"  // Production store
	DriverSQLite = "sqlite" // Local development and tests
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBDriver       string        // Database driver: mysql or sqlite
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	DBPath         string        // SQLite file path
	DBMaxOpenConns int           // Upper bound on open connections, 0 means unlimited
	JWTSecret      string        // JWT secret key
	RedisAddr      string        // Redis server address, empty disables caching
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	CacheTTL       time.Duration // Wishlist cache lifetime
	CORSOrigins    []string      // Origins allowed to call the API from a browser
	LogLevel       string        // Logrus level name
	IsProd         bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	maxOpen, _ := strconv.Atoi(os.Getenv("DB_MAX_OPEN_CONNS"))
	return &Config{
		AppPort:        getEnvOrDefault("APP_PORT", "8080"),       // Application port
		DBDriver:       getEnvOrDefault("DB_DRIVER", DriverMySQL), // Database driver
		DBUser:         os.Getenv("DB_USER"),                      // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                  // Database password
		DBHost:         getEnvOrDefault("DB_HOST", "127.0.0.1"),   // Database host
		DBPort:         getEnvOrDefault("DB_PORT", "3306"),        // Database port
		DBName:         os.Getenv("DB_NAME"),                      // Database name
		DBPath:         getEnvOrDefault("DB_PATH", "secret_santa.db"),
		DBMaxOpenConns: maxOpen,                 // Connection pool bound
		JWTSecret:      os.Getenv("JWT_SECRET"), // JWT secret key
		RedisAddr:      os.Getenv("REDIS_ADDR"), // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"), // Redis password
		RedisDB:        redisDB,                 // Redis database number
		CacheTTL:       parseDuration(os.Getenv("CACHE_TTL"), 60*time.Second),
		CORSOrigins:    splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"), // Log level
		IsProd:         os.Getenv("IS_PROD") == "true",       // Is production environment
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.DBPath
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
