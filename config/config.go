package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port   string
	AppEnv string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	// Tokens are issued by the booking admin's auth service; we only verify them.
	JWTAccessSecret    string
	ReportAllowedRoles []string // empty means the middleware defaults

	// Display zone for report dates, headers and file names.
	ReportTimezone string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitPerMinute int64

	KafkaBrokers    []string
	KafkaAuditTopic string

	CORSAllowedOrigins []string

	LogLevel string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	autoMigrate, _ := strconv.ParseBool(os.Getenv("DB_AUTO_MIGRATE"))

	rate, err := strconv.ParseInt(os.Getenv("RATE_LIMIT_PER_MINUTE"), 10, 64)
	if err != nil || rate <= 0 {
		rate = 100
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", EnvDevelopment),

		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate: autoMigrate,

		JWTAccessSecret:    os.Getenv("JWT_ACCESS_SECRET"),
		ReportAllowedRoles: splitList(os.Getenv("REPORT_ALLOWED_ROLES")),

		ReportTimezone: getEnv("REPORT_TIMEZONE", "Local"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		RateLimitPerMinute: rate,

		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaAuditTopic: getEnv("KAFKA_AUDIT_TOPIC", "report-audit"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// Location resolves ReportTimezone, falling back to the server zone.
func (c *Config) Location() *time.Location {
	if c.ReportTimezone == "" || c.ReportTimezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		log.Printf("unknown REPORT_TIMEZONE %q, using server local time", c.ReportTimezone)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
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
