// Package config loads bot settings from the environment (optionally
// seeded from a .env file) and validates them before anything starts.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

var ErrConfiguration = errors.New("invalid configuration")

const (
	LedgerSheets   = "sheets"
	LedgerPostgres = "postgres"
)

// Common holds settings shared by both bots.
type Common struct {
	TelegramBotToken string        `koanf:"telegram_bot_token" validate:"required"`
	Port             string        `koanf:"port"               validate:"required,numeric"`
	LogLevel         string        `koanf:"log_level"          validate:"oneof=debug info warn error"`
	LogFormat        string        `koanf:"log_format"         validate:"oneof=json text"`
	HTTPTimeout      time.Duration `koanf:"http_timeout"       validate:"min=1s,max=5m"`
	WebhookSecret    string        `koanf:"webhook_secret"`
}

// FlowBot configures the contact/guide-tree bot.
type FlowBot struct {
	Common `koanf:",squash"`

	WebhookURL     string `koanf:"webhook_url"      validate:"required,url"`
	APIHost        string `koanf:"api_host"         validate:"required,url"`
	FlowID         string `koanf:"flow_id"          validate:"required"`
	PreviousNodeID string `koanf:"previous_node_id" validate:"required"`
}

// BillBot configures the expense bot and its ledger backend.
type BillBot struct {
	Common `koanf:",squash"`

	LedgerBackend            string `koanf:"ledger_backend"              validate:"oneof=sheets postgres"`
	SpreadsheetID            string `koanf:"spreadsheet_id"              validate:"required_if=LedgerBackend sheets"`
	SheetName                string `koanf:"sheet_name"                  validate:"required_if=LedgerBackend sheets"`
	GoogleServiceAccountJSON string `koanf:"google_service_account_json" validate:"required_if=LedgerBackend sheets"`
	DatabaseURL              string `koanf:"database_url"                validate:"required_if=LedgerBackend postgres"`
	Timezone                 string `koanf:"timezone"                    validate:"required,timezone"`
}

// Location returns the time zone bills are dated in.
func (c *BillBot) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func defaultCommon() Common {
	return Common{
		Port:        "8080",
		LogLevel:    "info",
		LogFormat:   "json",
		HTTPTimeout: 15 * time.Second,
	}
}

func LoadFlowBot() (*FlowBot, error) {
	cfg := &FlowBot{
		Common:         defaultCommon(),
		FlowID:         "14159fd7cf964f9689116fd759a860d6",
		PreviousNodeID: "rs-66e1c6707be04cf882a9c36887716c7c",
	}
	if err := load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadBillBot() (*BillBot, error) {
	cfg := &BillBot{
		Common:        defaultCommon(),
		LedgerBackend: LedgerSheets,
		SheetName:     "Sheet1",
		Timezone:      "UTC",
	}
	if err := load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// load overlays environment variables on the defaults already set in cfg.
// Variable names are the upper-cased koanf keys, e.g. SPREADSHEET_ID.
func load(cfg any) error {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: could not load .env: %v", ErrConfiguration, err)
	}

	k := koanf.New(".")
	provider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		// blank variables keep the default
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("%w: failed to read environment: %v", ErrConfiguration, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("%w: failed to parse environment: %v", ErrConfiguration, err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s", ErrConfiguration, describe(err))
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return strings.ToUpper(name)
	})
	return v
}

// describe turns validation failures into hints naming the variable to set.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	hints := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_if":
			hints = append(hints, fmt.Sprintf("%s is not set, export it or add it to .env", fe.Field()))
		default:
			hints = append(hints, fmt.Sprintf("%s=%q is invalid (%s %s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(hints, "; ")
}
