package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, schedules)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Admin        AdminConfig
	Payment      PaymentConfig
	Ledger       LedgerConfig
	Notification NotificationConfig
	Catalog      CatalogConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" required:"true"`
	TimeZone string `envconfig:"BUSINESS_TIMEZONE" default:"Asia/Kolkata"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:5500"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type PaymentConfig struct {
	CashfreeAppID     string        `envconfig:"CASHFREE_APP_ID" default:""`
	CashfreeSecretKey string        `envconfig:"CASHFREE_SECRET_KEY" default:""`
	CashfreeEnv       string        `envconfig:"CASHFREE_ENV" default:"sandbox"`
	APIVersion        string        `envconfig:"CASHFREE_API_VERSION" default:"2023-08-01"`
	ReturnURL         string        `envconfig:"PAYMENT_RETURN_URL" default:"http://127.0.0.1:5500/success.html?order_id={order_id}"`
	Currency          string        `envconfig:"PAYMENT_CURRENCY" default:"INR"`
	Timeout           time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
	// AllowDemo honours client demo confirmations even when the gateway is configured.
	AllowDemo               bool `envconfig:"PAYMENT_ALLOW_DEMO" default:"false"`
	RequireWebhookSignature bool `envconfig:"PAYMENT_REQUIRE_WEBHOOK_SIGNATURE" default:"false"`
}

type LedgerConfig struct {
	RetryAttempts     int           `envconfig:"LEDGER_RETRY_ATTEMPTS" default:"3"`
	RetryBaseDelay    time.Duration `envconfig:"LEDGER_RETRY_BASE_DELAY" default:"50ms"`
	ReconcileSchedule string        `envconfig:"LEDGER_RECONCILE_SCHEDULE" default:"@every 5m"`
	ReconcileBatch    int32         `envconfig:"LEDGER_RECONCILE_BATCH" default:"500"`
}

type NotificationConfig struct {
	AMQPURL       string `envconfig:"NOTIFY_AMQP_URL" default:""`
	Exchange      string `envconfig:"NOTIFY_EXCHANGE" default:"booking.events"`
	RelaySchedule string `envconfig:"NOTIFY_RELAY_SCHEDULE" default:"@every 10s"`
	BatchSize     int32  `envconfig:"NOTIFY_BATCH_SIZE" default:"50"`
	MaxAttempts   int32  `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
}

type CatalogConfig struct {
	// File overrides the embedded catalog when set.
	File string `envconfig:"CATALOG_FILE" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Configured reports whether gateway credentials are present.
func (c PaymentConfig) Configured() bool {
	return c.CashfreeAppID != "" && c.CashfreeSecretKey != ""
}

func (c ServerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone("IST", 19800)
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			TimeZone: "Asia/Kolkata",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Admin: AdminConfig{
			Username: "admin",
			// PasswordHash is filled in by the test harness
		},
		Payment: PaymentConfig{
			CashfreeEnv: "sandbox",
			APIVersion:  "2023-08-01",
			ReturnURL:   "http://localhost/success?order_id={order_id}",
			Currency:    "INR",
			Timeout:     2 * time.Second,
		},
		Ledger: LedgerConfig{
			RetryAttempts:     3,
			RetryBaseDelay:    time.Millisecond,
			ReconcileSchedule: "@every 1h",
			ReconcileBatch:    100,
		},
		Notification: NotificationConfig{
			Exchange:      "booking.events",
			RelaySchedule: "@every 1h",
			BatchSize:     10,
			MaxAttempts:   3,
		},
	}
}
