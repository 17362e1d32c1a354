package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CartStorePostgres = "postgres"
	CartStoreRedis    = "redis"

	BrokerNone  = "none"
	BrokerAMQP  = "amqp"
	BrokerKafka = "kafka"
)

type Config struct {
	AppEnv  string
	AppPort string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration

	TaxRate       float64
	CouponCode    string
	CouponPercent float64

	CartStore     string
	CartTTL       time.Duration
	RedisAddr     string
	RedisPassword string

	EventBroker  string
	AMQPURL      string
	AMQPQueue    string
	KafkaBrokers []string
	KafkaTopic   string

	CORSOrigins       []string
	InternalSecretKey string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:            os.Getenv("APP_ENV"),
		AppPort:           getEnv("APP_PORT", "8080"),
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		CouponCode:        getEnv("COUPON_CODE", "SEAFRESH10"),
		CartStore:         strings.ToLower(getEnv("CART_STORE", CartStorePostgres)),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		EventBroker:       strings.ToLower(getEnv("EVENT_BROKER", BrokerNone)),
		AMQPURL:           os.Getenv("AMQP_URL"),
		AMQPQueue:         getEnv("AMQP_QUEUE", "order_events"),
		KafkaBrokers:      splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:        getEnv("KAFKA_TOPIC", "order-events"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		InternalSecretKey: os.Getenv("INTERNAL_SECRET_KEY"),
	}

	var err error
	if cfg.TokenTTL, err = parseDuration("TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CartTTL, err = parseDuration("CART_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.TaxRate, err = parseFloat("TAX_RATE", 0.05); err != nil {
		return nil, err
	}
	if cfg.CouponPercent, err = parseFloat("COUPON_PERCENT", 10); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load for main: any configuration error stops the process.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.DBHost == "" {
		return errors.New("DB_HOST is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("TAX_RATE out of range: %v", c.TaxRate)
	}
	if c.CouponPercent < 0 || c.CouponPercent > 100 {
		return fmt.Errorf("COUPON_PERCENT out of range: %v", c.CouponPercent)
	}

	switch c.CartStore {
	case CartStorePostgres, CartStoreRedis:
	default:
		return fmt.Errorf("unknown CART_STORE %q", c.CartStore)
	}

	switch c.EventBroker {
	case BrokerNone:
	case BrokerAMQP:
		if c.AMQPURL == "" {
			return errors.New("AMQP_URL is required when EVENT_BROKER=amqp")
		}
	case BrokerKafka:
		if len(c.KafkaBrokers) == 0 {
			return errors.New("KAFKA_BROKERS is required when EVENT_BROKER=kafka")
		}
	default:
		return fmt.Errorf("unknown EVENT_BROKER %q", c.EventBroker)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
