package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Remote appointments API (the system of record).
	APIBaseURL string `mapstructure:"API_BASE_URL"`
	APIToken   string `mapstructure:"API_TOKEN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisTokenDB  int    `mapstructure:"REDIS_TOKEN_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Stripe checkout. When StripeKey is empty, checkout sessions are
	// requested from the remote API instead.
	StripeKey        string `mapstructure:"STRIPE_KEY"`
	StripeSuccessURL string `mapstructure:"STRIPE_SUCCESS_URL"`
	StripeCancelURL  string `mapstructure:"STRIPE_CANCEL_URL"`

	// Scheduling defaults.
	DayStartHour        int     `mapstructure:"DAY_START_HOUR"`
	DayEndHour          int     `mapstructure:"DAY_END_HOUR"`
	SlotDurationMinutes int     `mapstructure:"SLOT_DURATION_MINUTES"`
	HourPixelHeight     float64 `mapstructure:"HOUR_PIXEL_HEIGHT"`
	MinBlockHeight      float64 `mapstructure:"MIN_BLOCK_HEIGHT"`
	DefaultHourlyRate   float64 `mapstructure:"DEFAULT_HOURLY_RATE"`

	// Reminder worker.
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`
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
	viper.SetDefault("API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_TOKEN_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("STRIPE_SUCCESS_URL", "http://localhost:3000/payments/success")
	viper.SetDefault("STRIPE_CANCEL_URL", "http://localhost:3000/payments/cancelled")
	viper.SetDefault("DAY_START_HOUR", 7)
	viper.SetDefault("DAY_END_HOUR", 19)
	viper.SetDefault("SLOT_DURATION_MINUTES", 30)
	viper.SetDefault("HOUR_PIXEL_HEIGHT", 64)
	viper.SetDefault("MIN_BLOCK_HEIGHT", 16)
	viper.SetDefault("DEFAULT_HOURLY_RATE", 50)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)

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
