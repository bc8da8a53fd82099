package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port                  string
	BotDepth              int
	BotDifficulty         string
	FieldColumns          int
	FieldRows             int
	RedisURL              string
	RedisPassword         string
	RedisDB               int
	MoveCacheTTL          time.Duration
	MoveTimeout           time.Duration
	DatabaseURL           string
	DBDriver              string
	DBMaxOpenConns        int
	DBMaxIdleConns        int
	DBConnMaxLifetimeMin  int
	DecisionRetentionDays int
	JWTSecret             string
	TokenTTL              time.Duration
	AllowedOrigins        []string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Engine
	botDepth := GetEnvAsInt("BOT_DEPTH", 4)
	botDifficulty := GetEnv("BOT_DIFFICULTY", "")
	fieldColumns := GetEnvAsInt("FIELD_COLUMNS", 7)
	fieldRows := GetEnvAsInt("FIELD_ROWS", 6)
	moveTimeoutMs := GetEnvAsInt("MOVE_TIMEOUT_MS", 5000)

	// Redis is optional, an empty URL disables the move cache
	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	redisDB := GetEnvAsInt("REDIS_DB", 0)
	moveCacheTTLSec := GetEnvAsInt("MOVE_CACHE_TTL_SECONDS", 3600)

	// Database is optional as well, without it decisions are not logged
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	dbDriver := GetEnv("DB_DRIVER", "pgx")
	if dbDriver != "pgx" && dbDriver != "postgres" {
		log.Printf("Unknown DB_DRIVER %s, using default: pgx", dbDriver)
		dbDriver = "pgx"
	}
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 10)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)
	retentionDays := GetEnvAsInt("DECISION_RETENTION_DAYS", 30)

	// Security, an empty secret leaves the API open
	jwtSecret := GetEnv("JWT_SECRET", "")
	tokenTTLHours := GetEnvAsInt("TOKEN_TTL_HOURS", 720)

	var allowedOrigins []string
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	AppConfig = &Config{
		Port:                  port,
		BotDepth:              botDepth,
		BotDifficulty:         botDifficulty,
		FieldColumns:          fieldColumns,
		FieldRows:             fieldRows,
		RedisURL:              redisURL,
		RedisPassword:         redisPassword,
		RedisDB:               redisDB,
		MoveCacheTTL:          time.Duration(moveCacheTTLSec) * time.Second,
		MoveTimeout:           time.Duration(moveTimeoutMs) * time.Millisecond,
		DatabaseURL:           dbURL,
		DBDriver:              dbDriver,
		DBMaxOpenConns:        dbMaxOpenConns,
		DBMaxIdleConns:        dbMaxIdleConns,
		DBConnMaxLifetimeMin:  dbConnMaxLifetimeMin,
		DecisionRetentionDays: retentionDays,
		JWTSecret:             jwtSecret,
		TokenTTL:              time.Duration(tokenTTLHours) * time.Hour,
		AllowedOrigins:        allowedOrigins,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
