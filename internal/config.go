package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

const (
	RunAddress         = "RUN_ADDRESS"
	DatabaseURI        = "DATABASE_URI"
	JWTSecret          = "JWT_SECRET"
	WebhookSecret      = "WEBHOOK_SECRET"
	WebhookAPIKey      = "WEBHOOK_API_KEY"
	PaymentTolerance   = "PAYMENT_TOLERANCE"
	OrderCodePrefix    = "ORDER_CODE_PREFIX"
	BankID             = "BANK_ID"
	AccountNo          = "ACCOUNT_NO"
	AccountName        = "ACCOUNT_NAME"
	KafkaBrokers       = "KAFKA_BROKERS"
	NotificationTopic  = "NOTIFICATION_TOPIC"
	NotifyWorkers      = "NOTIFY_WORKERS"
	NotifyMaxAttempts  = "NOTIFY_MAX_ATTEMPTS"
	ReconcileInterval  = "RECONCILE_INTERVAL"
	FulfillmentTimeout = "FULFILLMENT_TIMEOUT"
)

const (
	defaultRunAddress         = "localhost:8080"
	defaultTolerance          = "1000"
	defaultOrderCodePrefix    = "DH"
	defaultNotificationTopic  = "payment-notifications"
	defaultNotifyWorkers      = 2
	defaultNotifyMaxAttempts  = 3
	defaultReconcileInterval  = time.Minute
	defaultFulfillmentTimeout = 5 * time.Second
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type Config struct {
	RunAddress         string
	DatabaseURI        string
	JWTSecret          string
	WebhookSecret      string
	WebhookAPIKey      string
	PaymentTolerance   string
	OrderCodePrefix    string
	BankID             string
	AccountNo          string
	AccountName        string
	KafkaBrokers       string
	NotificationTopic  string
	NotifyWorkers      int
	NotifyMaxAttempts  int
	ReconcileInterval  time.Duration
	FulfillmentTimeout time.Duration
}

// NewConfig binds every setting to fs. Environment variables provide the defaults,
// flags override them once fs is parsed.
func NewConfig(fs *pflag.FlagSet) *Config {
	c := new(Config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=settlement sslmode=disable",
		host, port, user, password)

	fs.StringVarP(&c.RunAddress, "address", "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	fs.StringVarP(&c.DatabaseURI, "database", "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	fs.StringVar(&c.JWTSecret, "jwt-secret", setEnvOrDefault(JWTSecret, ""), "access token signing secret")
	fs.StringVar(&c.WebhookSecret, "webhook-secret", setEnvOrDefault(WebhookSecret, ""), "payment provider webhook secret")
	fs.StringVar(&c.WebhookAPIKey, "webhook-api-key", setEnvOrDefault(WebhookAPIKey, ""), "payment provider api key")
	fs.StringVar(&c.PaymentTolerance, "tolerance", setEnvOrDefault(PaymentTolerance, defaultTolerance), "allowed deviation between expected and transferred amount")
	fs.StringVar(&c.OrderCodePrefix, "order-prefix", setEnvOrDefault(OrderCodePrefix, defaultOrderCodePrefix), "public order code prefix")
	fs.StringVar(&c.BankID, "bank-id", setEnvOrDefault(BankID, ""), "receiving bank id for payment QR")
	fs.StringVar(&c.AccountNo, "account-no", setEnvOrDefault(AccountNo, ""), "receiving account number for payment QR")
	fs.StringVar(&c.AccountName, "account-name", setEnvOrDefault(AccountName, ""), "receiving account name for payment QR")
	fs.StringVarP(&c.KafkaBrokers, "kafka", "k", setEnvOrDefault(KafkaBrokers, ""), "comma separated kafka brokers, empty logs notifications")
	fs.StringVar(&c.NotificationTopic, "notification-topic", setEnvOrDefault(NotificationTopic, defaultNotificationTopic), "kafka topic for payment notifications")
	fs.IntVar(&c.NotifyWorkers, "notify-workers", intEnvOrDefault(NotifyWorkers, defaultNotifyWorkers), "notification workers")
	fs.IntVar(&c.NotifyMaxAttempts, "notify-attempts", intEnvOrDefault(NotifyMaxAttempts, defaultNotifyMaxAttempts), "delivery attempts per notification")
	fs.DurationVar(&c.ReconcileInterval, "reconcile-interval", durationEnvOrDefault(ReconcileInterval, defaultReconcileInterval), "interval between fulfillment reconciliation runs")
	fs.DurationVar(&c.FulfillmentTimeout, "fulfillment-timeout", durationEnvOrDefault(FulfillmentTimeout, defaultFulfillmentTimeout), "deadline for inline fulfillment after settlement")

	return c
}

func (c *Config) Tolerance() (decimal.Decimal, error) {
	t, err := decimal.NewFromString(c.PaymentTolerance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s: %w", PaymentTolerance, err)
	}
	if t.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", PaymentTolerance)
	}
	return t, nil
}

func (c *Config) Brokers() []string {
	var res []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			res = append(res, b)
		}
	}
	return res
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}

func intEnvOrDefault(env string, def int) int {
	res, err := strconv.Atoi(setEnvOrDefault(env, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return res
}

func durationEnvOrDefault(env string, def time.Duration) time.Duration {
	res, err := time.ParseDuration(setEnvOrDefault(env, def.String()))
	if err != nil {
		return def
	}
	return res
}
