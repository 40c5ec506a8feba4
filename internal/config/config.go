package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Mail      MailConfig
	Scheduler SchedulerConfig
	Notify    NotifyConfig
}

type ServerConfig struct {
	Port       string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	AdminToken string `envconfig:"ADMIN_TOKEN" required:"true"`
	PublicURL  string `envconfig:"PUBLIC_URL" default:"http://localhost:8080"`
	SiteName   string `envconfig:"SITE_NAME" default:"SitePulse"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"60s"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" default:""`
	Password         string `envconfig:"MAIL_PASSWORD" default:""`
	Host             string `envconfig:"MAIL_HOST" default:""`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL" default:""`
}

type SchedulerConfig struct {
	DefaultIntervalSeconds int           `envconfig:"CHECK_INTERVAL_SECONDS" default:"60"`
	MinIntervalSeconds     int           `envconfig:"MIN_INTERVAL_SECONDS" default:"10"`
	MaxProbeTimeout        time.Duration `envconfig:"MAX_PROBE_TIMEOUT" default:"30s"`
	RetentionDays          int           `envconfig:"RETENTION_DAYS" default:"30"`
	HistoryQueueSize       int           `envconfig:"HISTORY_QUEUE_SIZE" default:"1024"`
	HistoryWriteRetries    int           `envconfig:"HISTORY_WRITE_RETRIES" default:"3"`
}

type NotifyConfig struct {
	Enabled              bool          `envconfig:"ENABLE_NOTIFICATIONS" default:"true"`
	Events               []string      `envconfig:"NOTIFY_EVENTS" default:"online,offline,ssl_expiry"`
	DebounceSeconds      int           `envconfig:"DEBOUNCE_SECONDS" default:"0"`
	FlapThreshold        int           `envconfig:"FLAP_THRESHOLD" default:"5"`
	FlapWindow           time.Duration `envconfig:"FLAP_WINDOW" default:"10m"`
	CooldownMinutes      int           `envconfig:"NOTIFY_COOLDOWN_MINUTES" default:"0"`
	SSLAlertBeforeDays   int           `envconfig:"ALERT_BEFORE_DAYS" default:"14"`
	SendRetries          int           `envconfig:"NOTIFY_SEND_RETRIES" default:"3"`
	SendInitialBackoff   time.Duration `envconfig:"NOTIFY_SEND_BACKOFF" default:"500ms"`
	SubscriberBufferSize int           `envconfig:"EVENT_SUBSCRIBER_BUFFER" default:"16"`
	VerificationTokenTTL time.Duration `envconfig:"SUBSCRIPTION_TOKEN_TTL" default:"24h"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
