package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	DefaultRunAddress  = ":8080"
	DefaultJWTSecret   = "supersecretkey"
	DefaultJWTLifetime = 24 * time.Hour
)

// Tables holds the DynamoDB table names.
type Tables struct {
	Workers          string `env:"WORKERS_TABLE" envDefault:"workers"`
	Admins           string `env:"ADMINS_TABLE" envDefault:"admins"`
	Requests         string `env:"REQUESTS_TABLE" envDefault:"requests"`
	ArchiveRequests  string `env:"ARCHIVE_REQUESTS_TABLE" envDefault:"archive_requests"`
	Financials       string `env:"FINANCIALS_TABLE" envDefault:"financials"`
	WorkerFinancials string `env:"WORKER_FINANCIALS_TABLE" envDefault:"worker_financials"`
	Transactions     string `env:"TRANSACTIONS_TABLE" envDefault:"transactions"`
	Diagnostics      string `env:"DIAGNOSTICS_TABLE" envDefault:"diagnostics"`
}

type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	AutoCreate      bool   `env:"DYNAMODB_AUTO_CREATE" envDefault:"false"`
}

type Telegram struct {
	Token   string        `env:"TELEGRAM_BOT_TOKEN"`
	APIURL  string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	Timeout time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`
	// Mock logs codes instead of calling Telegram. Local development only.
	Mock bool `env:"TELEGRAM_MOCK" envDefault:"false"`
}

type OTP struct {
	// CodeTTL of zero keeps codes until they are used or replaced.
	CodeTTL       time.Duration `env:"OTP_CODE_TTL" envDefault:"0s"`
	SweepInterval time.Duration `env:"OTP_SWEEP_INTERVAL" envDefault:"1m"`
}

type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTLifetime   time.Duration `env:"JWT_LIFETIME"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins   []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ChecklistFile string        `env:"DIAGNOSTIC_CHECKLIST_FILE"`

	Tables   Tables
	DynamoDB DynamoDB
	Telegram Telegram
	OTP      OTP
}

// New reads command-line flags and then lets environment variables
// override them.
func New() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", DefaultRunAddress, "server address")
	flag.StringVar(&cfg.JWTSecret, "j", DefaultJWTSecret, "jwt secret key")
	flag.DurationVar(&cfg.JWTLifetime, "t", DefaultJWTLifetime, "jwt lifetime")
	flag.StringVar(&cfg.ChecklistFile, "c", "", "diagnostic checklist yaml file")
	flag.Parse()

	if err := Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse fills cfg from the environment only.
func Parse(cfg *Config) error {
	return env.Parse(cfg)
}
