package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
)

// Config holds every setting the API reads from the environment.
type Config struct {
	AppEnv string
	Port   string

	DBDriver string // mysql or postgres
	DBDSN    string

	RedisAddr     string // empty: revocations are kept in process memory
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTTTL    time.Duration

	AnalyticsBaseURL string
	AnalyticsAPIKey  string
	AnalyticsTimeout time.Duration

	Timezone *time.Location

	PaymentProvider     string // analytics, mpesa or midtrans
	OnboardingFee       int64  // 0 disables the payment step
	MpesaBaseURL        string
	MpesaConsumerKey    string
	MpesaConsumerSecret string
	MpesaShortcode      string
	MpesaPasskey        string
	MpesaCallbackURL    string
	MidtransServerKey   string
	MidtransProduction  bool

	FirebaseCredentials string // empty disables push alerts

	CORSOrigins []string

	AdminEmail    string
	AdminPassword string
}

// IsDevelopment reports whether the process runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	// A missing .env is fine, the variables may come from the real environment.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can feed a map.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		AppEnv:              get("APP_ENV", "production"),
		Port:                get("PORT", "8080"),
		DBDriver:            strings.ToLower(get("DB_DRIVER", "mysql")),
		DBDSN:               get("DB_DSN", ""),
		RedisAddr:           get("REDIS_ADDR", ""),
		RedisPassword:       get("REDIS_PASSWORD", ""),
		JWTSecret:           get("JWT_SECRET", ""),
		AnalyticsBaseURL:    strings.TrimRight(get("ANALYTICS_BASE_URL", "http://localhost:8000"), "/"),
		AnalyticsAPIKey:     get("ANALYTICS_API_KEY", ""),
		PaymentProvider:     strings.ToLower(get("PAYMENT_PROVIDER", "analytics")),
		MpesaBaseURL:        strings.TrimRight(get("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke"), "/"),
		MpesaConsumerKey:    get("MPESA_CONSUMER_KEY", ""),
		MpesaConsumerSecret: get("MPESA_CONSUMER_SECRET", ""),
		MpesaShortcode:      get("MPESA_SHORTCODE", ""),
		MpesaPasskey:        get("MPESA_PASSKEY", ""),
		MpesaCallbackURL:    get("MPESA_CALLBACK_URL", ""),
		MidtransServerKey:   get("MIDTRANS_SERVER_KEY", ""),
		FirebaseCredentials: get("FIREBASE_CREDENTIALS", ""),
		AdminEmail:          get("ADMIN_EMAIL", ""),
		AdminPassword:       get("ADMIN_PASSWORD", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.JWTTTL, err = time.ParseDuration(get("JWT_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("JWT_TTL: %w", err)
	}
	if cfg.AnalyticsTimeout, err = time.ParseDuration(get("ANALYTICS_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("ANALYTICS_TIMEOUT: %w", err)
	}
	if cfg.OnboardingFee, err = strconv.ParseInt(get("ONBOARDING_FEE", "5000"), 10, 64); err != nil {
		return nil, fmt.Errorf("ONBOARDING_FEE: %w", err)
	}
	if cfg.MidtransProduction, err = strconv.ParseBool(get("MIDTRANS_PRODUCTION", "false")); err != nil {
		return nil, fmt.Errorf("MIDTRANS_PRODUCTION: %w", err)
	}
	if cfg.Timezone, err = time.LoadLocation(get("TIMEZONE", "Africa/Nairobi")); err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}

	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be mysql or postgres, got %q", c.DBDriver)
	}
	switch c.PaymentProvider {
	case "analytics", "mpesa", "midtrans":
	default:
		return fmt.Errorf("PAYMENT_PROVIDER must be analytics, mpesa or midtrans, got %q", c.PaymentProvider)
	}
	if c.JWTSecret == "" {
		if !c.IsDevelopment() {
			return fmt.Errorf("JWT_SECRET is required outside development")
		}
		c.JWTSecret = "afyajirani-dev-secret"
	}
	if c.OnboardingFee < 0 {
		return fmt.Errorf("ONBOARDING_FEE must not be negative")
	}
	return nil
}
