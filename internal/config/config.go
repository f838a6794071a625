package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds application configuration shared by the api, worker and consumer binaries.
type Config struct {
	Port         string
	IsProduction bool
	Timezone     *time.Location

	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	JWT       JWTConfig
	Mail      MailConfig
	Worker    WorkerConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

type DBConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Broker        string
	ConsumerGroup string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// MailConfig is the SMTP sender configuration. An empty FromAddress or Host disables notifications.
type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type WorkerConfig struct {
	OutboxPollInterval time.Duration
	ReconcileInterval  time.Duration
}

type CacheConfig struct {
	DashboardTTL time.Duration
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration from the environment, a .env file if present, and defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()
	logger := zap.L().Named("config")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	loc, err := time.LoadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", v.GetString("APP_TIMEZONE"), err)
	}

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		Timezone:     loc,
		DB: DBConfig{
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			MaxRetries: v.GetInt("DB_MAX_RETRIES"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Kafka: KafkaConfig{
			Broker:        v.GetString("KAFKA_BROKER"),
			ConsumerGroup: v.GetString("KAFKA_CONSUMER_GROUP"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: v.GetDuration("JWT_EXPIRY_DURATION"),
		},
		Mail: MailConfig{
			Host:        v.GetString("SMTP_HOST"),
			Port:        v.GetInt("SMTP_PORT"),
			Username:    v.GetString("SMTP_USERNAME"),
			Password:    v.GetString("SMTP_PASSWORD"),
			FromAddress: v.GetString("MAIL_FROM_ADDRESS"),
			FromName:    v.GetString("MAIL_FROM_NAME"),
		},
		Worker: WorkerConfig{
			OutboxPollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
			ReconcileInterval:  v.GetDuration("BALANCE_RECONCILE_INTERVAL"),
		},
		Cache: CacheConfig{
			DashboardTTL: v.GetDuration("DASHBOARD_CACHE_TTL"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWT.Expiry <= 0 {
		cfg.JWT.Expiry = 24 * time.Hour
	}
	if cfg.Mail.FromAddress == "" || cfg.Mail.Host == "" {
		logger.Warn("SMTP_HOST or MAIL_FROM_ADDRESS not set, leave status emails will be skipped")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("APP_TIMEZONE", "Asia/Jakarta")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "siap_cuti")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("KAFKA_BROKER", "")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "siap-cuti-balance-reconciler")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("MAIL_FROM_ADDRESS", "")
	v.SetDefault("MAIL_FROM_NAME", "SIAP CUTI Admin")

	v.SetDefault("OUTBOX_POLL_INTERVAL", "3s")
	v.SetDefault("BALANCE_RECONCILE_INTERVAL", "1h")
	v.SetDefault("DASHBOARD_CACHE_TTL", "60s")

	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}
