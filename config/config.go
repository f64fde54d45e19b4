package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Environment string `required:"true" envconfig:"APP_ENV" validate:"oneof=development production"`
	Port        string `envconfig:"PORT"`

	Ledger
	Monitor
	StatusBar

	Discord
	Pushbullet
	Pushover
	Telegram
	Firebase
	MongoDb
}

type Ledger struct {
	NodeURL     string   `required:"true" envconfig:"NODE_URL" validate:"required,url,node_scheme"`
	Kind        string   `envconfig:"LEDGER_KIND" default:"substrate" validate:"oneof=substrate evm"`
	Addresses   []string `required:"true" envconfig:"ADDRESSES" validate:"required,min=1,dive,required"`
	TokenSymbol string   `envconfig:"TOKEN_SYMBOL" default:"AI3" validate:"required"`
}

type Monitor struct {
	CheckIntervalSeconds int `envconfig:"CHECK_INTERVAL_SECONDS" default:"300" validate:"gt=0"`
	QueryTimeoutSeconds  int `envconfig:"QUERY_TIMEOUT_SECONDS" default:"15" validate:"gt=0"`
	HTTPTimeoutSeconds   int `envconfig:"HTTP_TIMEOUT_SECONDS" default:"10" validate:"gt=0"`
}

type StatusBar struct {
	Enabled                bool   `envconfig:"STATUSBAR_ENABLED" default:"true"`
	RefreshIntervalSeconds int    `envconfig:"REFRESH_INTERVAL_SECONDS" default:"10" validate:"gt=0"`
	GPUEnabled             bool   `envconfig:"GPU_ENABLED" default:"true"`
	GPUWidthThreshold      int    `envconfig:"GPU_WIDTH_THRESHOLD" default:"160" validate:"gt=0"`
	TerminalWidth          int    `envconfig:"TERMINAL_WIDTH" default:"0" validate:"gte=0"`
	StatusFile             string `envconfig:"STATUS_FILE"`
}

type Discord struct {
	Webhook string `envconfig:"DISCORD_WEBHOOK"`
}

type Pushbullet struct {
	Token string `envconfig:"PUSHBULLET_TOKEN"`
}

type Pushover struct {
	UserKey  string `envconfig:"PUSHOVER_USER_KEY"`
	APIToken string `envconfig:"PUSHOVER_API_TOKEN"`
}

type Telegram struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `envconfig:"TELEGRAM_CHAT_ID"`
}

type Firebase struct {
	CredPath           string `envconfig:"FIREBASE_CRED_PATH"`
	PushToken          string `envconfig:"FIREBASE_PUSH_TOKEN"`
	AndroidChannelName string `envconfig:"ANDROID_CHANNEL_NAME" default:"balance-alerts"`
}

type MongoDb struct {
	MongoDbName string `envconfig:"MONGO_DB_NAME"`
	MongoDbUrl  string `envconfig:"MONGO_DB_URL"`
}

// GetConfig loads the optional env files, processes the environment and
// validates the result. Every failure wraps ErrInvalidConfig.
func GetConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// envconfig splits on commas only, "a, b" leaves a leading space
	for i, address := range cfg.Addresses {
		cfg.Addresses[i] = strings.TrimSpace(address)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// FirebaseEnabled reports whether push alerts through FCM are configured.
func (c *Config) FirebaseEnabled() bool {
	return c.Firebase.CredPath != "" && c.Firebase.PushToken != ""
}

// HistoryEnabled reports whether alerts are recorded in MongoDB.
func (c *Config) HistoryEnabled() bool {
	return c.MongoDbUrl != "" && c.MongoDbName != ""
}
