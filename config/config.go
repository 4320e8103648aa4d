package config

import (
	"flag"
	"os"
	"strings"
	"sync"
)

const (
	defaultServerAddress      = ":8080"
	defaultDatabaseDSN        = ""
	defaultLogLevel           = "debug"
	defaultAuthTokenKey       = ""
	defaultStripeSecretKey    = ""
	defaultCheckoutSuccessURL = "http://localhost:5173/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"
	defaultCheckoutCancelURL  = "http://localhost:5173/dashboard/payment-cancelled"
	defaultCheckoutCurrency   = "usd"
	defaultRedisAddress       = ""
	defaultKafkaBrokers       = ""
	defaultOrderPaidTopic     = "order.paid"
)

type Config struct {
	ServerAddr         string
	DatabaseDSN        string
	LogLevel           string
	AuthTokenKey       string
	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
	CheckoutCurrency   string
	RedisAddr          string
	KafkaBrokers       []string
	OrderPaidTopic     string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}
		var brokers string

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "database DSN")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.AuthTokenKey, "k", defaultAuthTokenKey, "hex encoded auth token key")
		flag.StringVar(&cfg.StripeSecretKey, "s", defaultStripeSecretKey, "stripe secret key")
		flag.StringVar(&cfg.CheckoutSuccessURL, "success-url", defaultCheckoutSuccessURL, "checkout success redirect")
		flag.StringVar(&cfg.CheckoutCancelURL, "cancel-url", defaultCheckoutCancelURL, "checkout cancel redirect")
		flag.StringVar(&cfg.CheckoutCurrency, "currency", defaultCheckoutCurrency, "checkout currency")
		flag.StringVar(&cfg.RedisAddr, "redis", defaultRedisAddress, "redis address, empty disables cache")
		flag.StringVar(&brokers, "kafka", defaultKafkaBrokers, "comma separated kafka brokers, empty disables events")
		flag.StringVar(&cfg.OrderPaidTopic, "order-paid-topic", defaultOrderPaidTopic, "kafka topic for paid orders")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if tokenKeyEnv := os.Getenv("AUTH_TOKEN_KEY"); tokenKeyEnv != "" {
			cfg.AuthTokenKey = tokenKeyEnv
		}
		if stripeKeyEnv := os.Getenv("STRIPE_SECRET_KEY"); stripeKeyEnv != "" {
			cfg.StripeSecretKey = stripeKeyEnv
		}
		if successURLEnv := os.Getenv("CHECKOUT_SUCCESS_URL"); successURLEnv != "" {
			cfg.CheckoutSuccessURL = successURLEnv
		}
		if cancelURLEnv := os.Getenv("CHECKOUT_CANCEL_URL"); cancelURLEnv != "" {
			cfg.CheckoutCancelURL = cancelURLEnv
		}
		if currencyEnv := os.Getenv("CHECKOUT_CURRENCY"); currencyEnv != "" {
			cfg.CheckoutCurrency = currencyEnv
		}
		if redisAddrEnv := os.Getenv("REDIS_ADDRESS"); redisAddrEnv != "" {
			cfg.RedisAddr = redisAddrEnv
		}
		if brokersEnv := os.Getenv("KAFKA_BROKERS"); brokersEnv != "" {
			brokers = brokersEnv
		}
		if topicEnv := os.Getenv("KAFKA_ORDER_PAID_TOPIC"); topicEnv != "" {
			cfg.OrderPaidTopic = topicEnv
		}

		cfg.KafkaBrokers = splitList(brokers)
		cfg.CheckoutCurrency = strings.ToLower(cfg.CheckoutCurrency)

		singleton = &cfg
	})

	return singleton, nil
}

// splitList splits comma separated list and drops empty items
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
