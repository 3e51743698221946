package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)

type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	CorsOrigins []string

	StorageDriver string
	MySQL         MySQLConfig
	SQLitePath    string
	PostgresDSN   string
	Redis         RedisConfig
	S3            S3Config

	KafkaBrokers []string
	KafkaTopic   string
}

type MySQLConfig struct {
	DSN    string
	DBName string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
}

// LoadDotEnv reads .env if present. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Load builds a Config from the process environment.
func Load() (Config, error) {
	cfg := Config{
		Port:          envOrDefault("PORT", "8080"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		CorsOrigins:   splitList(os.Getenv("CORS_ORIGINS")),
		StorageDriver: strings.ToLower(envOrDefault("STORAGE_DRIVER", DriverMemory)),
		SQLitePath:    envOrDefault("SQLITE_PATH", "hotel.db"),
		PostgresDSN:   envOrDefault("POSTGRES_DSN", "postgres://localhost/frontdesk?sslmode=disable"),
		Redis: RedisConfig{
			Addr:      envOrDefault("REDIS_ADDR", "localhost:6379"),
			Password:  os.Getenv("REDIS_PASSWORD"),
			DB:        envInt("REDIS_DB", 0),
			KeyPrefix: envOrDefault("REDIS_KEY_PREFIX", "frontdesk:"),
		},
		S3: S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    envOrDefault("S3_REGION", "us-east-1"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			PathStyle: strings.EqualFold(os.Getenv("S3_PATH_STYLE"), "true"),
			Prefix:    os.Getenv("S3_PREFIX"),

			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		},
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),
	}
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"*"}
	}

	if cfg.StorageDriver == DriverMySQL {
		dsn, dbName, err := resolveMySQLDSN()
		if err != nil {
			return Config{}, err
		}
		cfg.MySQL = MySQLConfig{DSN: dsn, DBName: dbName}
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
