package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisWarmerDB int    `mapstructure:"REDIS_WARMER_DB"`

	// Availability search configuration. The span cap is a config value, not a
	// constant, so both sides of the boundary can be exercised in tests.
	DefaultSearchSpanDays      int `mapstructure:"DEFAULT_SEARCH_SPAN_DAYS"`
	MaxSearchSpanDays          int `mapstructure:"MAX_SEARCH_SPAN_DAYS"`
	AvailabilityCacheTTLSecond int `mapstructure:"AVAILABILITY_CACHE_TTL_SECONDS"`

	// Cache-warming worker configuration. WarmVerticals is a comma-separated
	// list; empty disables the scheduler.
	WarmVerticals       string `mapstructure:"WARM_VERTICALS"`
	WarmIntervalMinutes int    `mapstructure:"WARM_INTERVAL_MINUTES"`

	HealthIntervalSeconds int `mapstructure:"HEALTH_CHECK_INTERVAL_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_WARMER_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "medibook")
	viper.SetDefault("DEFAULT_SEARCH_SPAN_DAYS", 30)
	viper.SetDefault("MAX_SEARCH_SPAN_DAYS", 30)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SECONDS", 120)
	viper.SetDefault("WARM_VERTICALS", "")
	viper.SetDefault("WARM_INTERVAL_MINUTES", 360)
	viper.SetDefault("HEALTH_CHECK_INTERVAL_SECONDS", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
