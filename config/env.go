package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Redis      RedisConfig
	DB         DBConfig
	Commission CommissionConfig
	Gateway    GatewayConfig
	Auth       AuthConfig
	Jobs       JobsConfig
	LogLevel   string
}

type DBConfig struct {
	DSN string
}

type CommissionConfig struct {
	GRPCAddr   string
	ServiceURL string
	CacheTTL   time.Duration
}

type GatewayConfig struct {
	Port      string
	RateLimit string
}

type AuthConfig struct {
	JWTSecret string
}

type JobsConfig struct {
	BordereauCron        string
	BordereauCronEnabled bool
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	cronEnabled, _ := strconv.ParseBool(getEnv("BORDEREAU_CRON_ENABLED", "true"))
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil || cacheTTL <= 0 {
		log.Printf("Invalid CACHE_TTL, using 1h")
		cacheTTL = time.Hour
	}

	return Config{
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		DB: DBConfig{
			DSN: getEnv("COMMISSION_DSN", "host=localhost user=postgres password=postgres dbname=commissions port=5432 sslmode=disable"),
		},
		Commission: CommissionConfig{
			GRPCAddr:   getEnv("COMMISSION_GRPC_ADDR", ":50054"),
			ServiceURL: getEnv("COMMISSION_SERVICE_URL", "localhost:50054"),
			CacheTTL:   cacheTTL,
		},
		Gateway: GatewayConfig{
			Port:      getEnv("GATEWAY_PORT", "8080"),
			RateLimit: getEnv("RATE_LIMIT", "100-M"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Jobs: JobsConfig{
			BordereauCron:        getEnv("BORDEREAU_CRON", "0 3 1 * *"),
			BordereauCronEnabled: cronEnabled,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
