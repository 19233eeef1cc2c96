package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceDriverAPI      = "api"
	SourceDriverPostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Source    SourceConfig
	Directory DirectoryConfig
	DB        DBConfig
	Redis     RedisConfig
}

type AppConfig struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
}

type SourceConfig struct {
	Driver       string // api or postgres
	URL          string
	Timeout      time.Duration
	SeedFromAPI  bool
	CacheTTL     time.Duration
	CacheEnabled bool
}

type DirectoryConfig struct {
	BasePath        string
	SuggestionLimit int
	SessionTTL      time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")

	v.SetDefault("SOURCE_DRIVER", SourceDriverAPI)
	v.SetDefault("SOURCE_URL", "https://jsonplaceholder.typicode.com/users")
	v.SetDefault("SOURCE_TIMEOUT", "10s")
	v.SetDefault("SEED_FROM_API", false)
	v.SetDefault("RECORDS_CACHE_ENABLED", true)
	v.SetDefault("RECORDS_CACHE_TTL", "1h")

	v.SetDefault("BASE_PATH", "/")
	v.SetDefault("SUGGESTION_LIMIT", 3)
	v.SetDefault("SESSION_TTL", "24h")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
}

// LoadConfig reads .env when present and lets environment variables override it.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	sourceTimeout, err := time.ParseDuration(v.GetString("SOURCE_TIMEOUT"))
	if err != nil {
		sourceTimeout = 10 * time.Second
	}

	cacheTTL, err := time.ParseDuration(v.GetString("RECORDS_CACHE_TTL"))
	if err != nil {
		cacheTTL = time.Hour
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	driver := v.GetString("SOURCE_DRIVER")
	if driver != SourceDriverPostgres {
		driver = SourceDriverAPI
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Source: SourceConfig{
			Driver:       driver,
			URL:          v.GetString("SOURCE_URL"),
			Timeout:      sourceTimeout,
			SeedFromAPI:  v.GetBool("SEED_FROM_API"),
			CacheTTL:     cacheTTL,
			CacheEnabled: v.GetBool("RECORDS_CACHE_ENABLED"),
		},
		Directory: DirectoryConfig{
			BasePath:        v.GetString("BASE_PATH"),
			SuggestionLimit: v.GetInt("SUGGESTION_LIMIT"),
			SessionTTL:      sessionTTL,
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}
