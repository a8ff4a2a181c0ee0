package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Bitrix   Bitrix
	Cache    Cache
	Mailbox  Mailbox
	Mailer   Mailer
	Kafka    Kafka
	Jobs     Jobs
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Bitrix struct {
	WebhookURL    string        `env:"BITRIX_WEBHOOK_URL"`
	RetryAttempts int           `env:"BITRIX_RETRY_ATTEMPTS" envDefault:"5"`
	RetryDelay    time.Duration `env:"BITRIX_RETRY_DELAY" envDefault:"2s"`
	Timeout       time.Duration `env:"BITRIX_TIMEOUT" envDefault:"10s"`
	PortalURL     string        `env:"BITRIX_PORTAL_URL" envDefault:"https://setuptecnologia.bitrix24.com.br"`
}

type Cache struct {
	Dir              string `env:"CACHE_DIR" envDefault:"cache"`
	DeleteReconciled bool   `env:"CACHE_DELETE_RECONCILED" envDefault:"false"`
}

type Mailbox struct {
	Server   string `env:"IMAP_SERVER"`
	Email    string `env:"IMAP_EMAIL"`
	Password string `env:"IMAP_PASSWORD"`
	Mailbox  string `env:"IMAP_MAILBOX" envDefault:"INBOX"`
	Sender   string `env:"IMAP_SENDER" envDefault:"contratos@setuptecnologia.com"`
}

type Mailer struct {
	Host                 string   `env:"MAILER_HOST"`
	Port                 int      `env:"MAILER_PORT" envDefault:"587"`
	Login                string   `env:"MAILER_LOGIN"`
	Password             string   `env:"MAILER_PASSWORD"`
	From                 string   `env:"MAILER_FROM"`
	FromName             string   `env:"MAILER_FROM_NAME" envDefault:"Abertura de Base"`
	SittaxRecipients     []string `env:"MAILER_SITTAX_RECIPIENTS" envSeparator:","`
	AcessoriasRecipients []string `env:"MAILER_ACESSORIAS_RECIPIENTS" envSeparator:","`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	CardsCreatedTopic string   `env:"KAFKA_CARDS_CREATED_TOPIC" envDefault:"cards-created"`
	ConsumerID        string   `env:"KAFKA_CONSUMER_ID" envDefault:"bitrix-sync-notifier"`
}

type Jobs struct {
	FetchEnabled  bool          `env:"JOB_FETCH_ENABLED" envDefault:"true"`
	FetchInterval time.Duration `env:"JOB_FETCH_INTERVAL" envDefault:"15m"`
	SyncEnabled   bool          `env:"JOB_SYNC_ENABLED" envDefault:"true"`
	SyncInterval  time.Duration `env:"JOB_SYNC_INTERVAL" envDefault:"15m"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
