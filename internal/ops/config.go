package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"main/internal/quote"
	"main/internal/store"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Universe []string       `json:"universe"`
	Quote    QuoteConfig    `json:"quote"`
	Database DatabaseConfig `json:"database"`
}

// QuoteConfig tunes the refresh loop.
type QuoteConfig struct {
	Slots           int `json:"slots"`
	IdleIntervalSec int `json:"idleIntervalSec"`
	GraceSeconds    int `json:"graceSeconds"`
	LookbackMinutes int `json:"lookbackMinutes"`
}

// DatabaseConfig describes the postgres connection.
type DatabaseConfig struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	Password   string `json:"password"`
	Database   string `json:"database"`
	SSLMode    string `json:"sslMode"`
	ConnString string `json:"connString"`
}

// Loaded is the resolved configuration ready for wiring.
type Loaded struct {
	Quote    quote.Config
	Lookback time.Duration
	DB       store.Option
}

// Load reads a JSON config file and resolves it.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	if len(cfg.Universe) == 0 {
		return Loaded{}, fmt.Errorf("universe is empty")
	}
	if cfg.Quote.Slots == 1 || cfg.Quote.Slots < 0 {
		return Loaded{}, fmt.Errorf("quote slots must be at least 2")
	}
	if cfg.Quote.GraceSeconds < 0 || cfg.Quote.GraceSeconds > 59 {
		return Loaded{}, fmt.Errorf("grace seconds must be within [0, 59]")
	}

	lookback := time.Duration(cfg.Quote.LookbackMinutes) * time.Minute

	return Loaded{
		Quote: quote.Config{
			Universe:     cfg.Universe,
			Slots:        cfg.Quote.Slots,
			IdleInterval: time.Duration(cfg.Quote.IdleIntervalSec) * time.Second,
			GraceSeconds: cfg.Quote.GraceSeconds,
		},
		Lookback: lookback,
		DB: store.Option{
			Host:       cfg.Database.Host,
			Port:       cfg.Database.Port,
			User:       cfg.Database.User,
			Password:   cfg.Database.Password,
			Database:   cfg.Database.Database,
			SSLMode:    cfg.Database.SSLMode,
			ConnString: cfg.Database.ConnString,
		},
	}, nil
}
