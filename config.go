package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sportsstore-service/database"
	aws_pkg "sportsstore-service/pkg/aws"

	"github.com/joho/godotenv"
)

const dbSecretName = "sportsstore/DB_CREDENTIALS"

type Config struct {
	Port     string
	AppEnv   string
	PageSize int

	CatalogBackend string
	Postgres       database.PostgresConfig
	MongoURI       string
	MongoDB        string
	DynamoTable    string
	SeedData       bool

	RedisURL        string
	CartTTL         time.Duration
	CatalogCacheTTL time.Duration

	JWTSecret          string
	AdminUsername      string
	AdminPasswordHash  string
	TokenTTL           time.Duration
	TrustGateway       bool
	AllowedOrigins     []string
	RateLimitPerMinute int

	OrderProcessors  []string
	OrderSNSTopicArn string
	OrderSQSQueueURL string
	KafkaBrokers     []string
	KafkaOrderTopic  string
	StripeSecretKey  string
	StripeCurrency   string

	MailTo           string
	MailFrom         string
	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPass         string
	MailWriteAsFile  bool
	MailFileLocation string

	ProductImageBucket string
	CloudWatchEnabled  bool
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		PageSize: getEnvInt("PAGE_SIZE", 4),

		CatalogBackend: strings.ToLower(getEnv("CATALOG_BACKEND", "postgres")),
		Postgres: database.PostgresConfig{
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DB:       os.Getenv("POSTGRES_DB"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		},
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "sportsstore"),
		DynamoTable: getEnv("DYNAMODB_PRODUCTS_TABLE", "Products"),
		SeedData:    getEnvBool("SEED_DATA", false),

		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CartTTL:         getEnvDuration("CART_TTL", 168*time.Hour),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 10*time.Minute),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "Admin"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 8*time.Hour),
		TrustGateway:       getEnvBool("TRUST_GATEWAY_HEADERS", false),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),

		OrderProcessors:  splitList(strings.ToLower(getEnv("ORDER_PROCESSORS", "email"))),
		OrderSNSTopicArn: os.Getenv("ORDER_SNS_TOPIC_ARN"),
		OrderSQSQueueURL: os.Getenv("ORDER_SQS_QUEUE_URL"),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderTopic:  getEnv("KAFKA_ORDER_TOPIC", "orders.placed"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripeCurrency:   getEnv("STRIPE_CURRENCY", "usd"),

		MailTo:           getEnv("ORDER_MAIL_TO", "orders@example.com"),
		MailFrom:         getEnv("ORDER_MAIL_FROM", "sportsstore@example.com"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		MailWriteAsFile:  getEnvBool("ORDER_MAIL_WRITE_AS_FILE", true),
		MailFileLocation: getEnv("ORDER_MAIL_FILE_LOCATION", "./sportsstore_emails"),

		ProductImageBucket: os.Getenv("PRODUCT_IMAGE_BUCKET"),
		CloudWatchEnabled:  getEnvBool("CLOUDWATCH_ENABLED", false),
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			sm := aws_pkg.NewSecretsClient(awsCfg)
			if m, err := sm.GetSecretMap(context.Background(), dbSecretName); err == nil {
				applySecrets(cfg, m)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applySecrets overrides credentials with non-empty values from m.
func applySecrets(cfg *Config, m map[string]string) {
	set := func(dst *string, key string) {
		if v, ok := m[key]; ok && v != "" {
			*dst = v
		}
	}
	set(&cfg.Postgres.User, "POSTGRES_USER")
	set(&cfg.Postgres.Password, "POSTGRES_PASSWORD")
	set(&cfg.Postgres.DB, "POSTGRES_DB")
	set(&cfg.Postgres.Host, "POSTGRES_HOST")
	set(&cfg.Postgres.Port, "POSTGRES_PORT")
	set(&cfg.JWTSecret, "JWT_SECRET")
	set(&cfg.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	set(&cfg.StripeSecretKey, "STRIPE_SECRET_KEY")
	set(&cfg.SMTPPass, "SMTP_PASS")
}

func (c *Config) Validate() error {
	switch c.CatalogBackend {
	case "postgres":
		p := c.Postgres
		if p.User == "" || p.Password == "" || p.DB == "" || p.Host == "" {
			return fmt.Errorf("database config incomplete")
		}
	case "mongo":
		if c.MongoURI == "" || c.MongoDB == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DB are required for the mongo catalog")
		}
	case "dynamodb":
		if c.DynamoTable == "" {
			return fmt.Errorf("DYNAMODB_PRODUCTS_TABLE is required for the dynamodb catalog")
		}
	default:
		return fmt.Errorf("unknown CATALOG_BACKEND %q", c.CatalogBackend)
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	for _, p := range c.OrderProcessors {
		switch p {
		case "email":
			if !c.MailWriteAsFile && c.SMTPHost == "" {
				return fmt.Errorf("SMTP_HOST is required when ORDER_MAIL_WRITE_AS_FILE is false")
			}
		case "sns":
			if c.OrderSNSTopicArn == "" {
				return fmt.Errorf("ORDER_SNS_TOPIC_ARN is required for the sns order processor")
			}
		case "sqs":
			if c.OrderSQSQueueURL == "" {
				return fmt.Errorf("ORDER_SQS_QUEUE_URL is required for the sqs order processor")
			}
		case "kafka":
			if len(c.KafkaBrokers) == 0 {
				return fmt.Errorf("KAFKA_BROKERS is required for the kafka order processor")
			}
		case "stripe":
			if c.StripeSecretKey == "" {
				return fmt.Errorf("STRIPE_SECRET_KEY is required for the stripe order processor")
			}
		default:
			return fmt.Errorf("unknown order processor %q", p)
		}
	}
	if len(c.OrderProcessors) == 0 {
		return fmt.Errorf("ORDER_PROCESSORS must name at least one processor")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
