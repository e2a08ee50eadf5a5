package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StorePulse/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Storefront struct {
		StoreURL             string  `yaml:"store_url"`
		APIKey               string  `yaml:"api_key"`
		Password             string  `yaml:"password"`
		VariantID            int64   `yaml:"variant_id"`
		UnitPrice            float64 `yaml:"unit_price"`
		SubmitTimeoutSeconds int     `yaml:"submit_timeout_seconds"`
		MaxOrdersPerMinute   int     `yaml:"max_orders_per_minute"`
	} `yaml:"storefront"`
	Revenue struct {
		MinDaily int `yaml:"min_daily"`
		MaxDaily int `yaml:"max_daily"`
	} `yaml:"revenue"`
	Market struct {
		Timezone  string `yaml:"timezone"`
		OpenHour  int    `yaml:"open_hour"`
		CloseHour int    `yaml:"close_hour"`
	} `yaml:"market"`
	Slots   []model.Slot `yaml:"slots"`
	Traffic struct {
		CartAddProbMin float64 `yaml:"cart_add_prob_min"`
		CartAddProbMax float64 `yaml:"cart_add_prob_max"`
		ConvertProbMin float64 `yaml:"convert_prob_min"`
		ConvertProbMax float64 `yaml:"convert_prob_max"`
	} `yaml:"traffic"`
	Pacing struct {
		StateFile string `yaml:"state_file"`
		TickCron  string `yaml:"tick_cron"`
	} `yaml:"pacing"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STORE_URL"); v != "" {
		cfg.Storefront.StoreURL = v
	}
	if v := os.Getenv("STOREFRONT_API_KEY"); v != "" {
		cfg.Storefront.APIKey = v
	}
	if v := os.Getenv("STOREFRONT_PASSWORD"); v != "" {
		cfg.Storefront.Password = v
	}
	if v := os.Getenv("VARIANT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Storefront.VariantID = id
		}
	}
	if v := os.Getenv("UNIT_PRICE"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Storefront.UnitPrice = p
		}
	}
	if v := os.Getenv("MIN_DAILY_REVENUE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Revenue.MinDaily = n
		}
	}
	if v := os.Getenv("MAX_DAILY_REVENUE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Revenue.MaxDaily = n
		}
	}
	if v := os.Getenv("MARKET_TIMEZONE"); v != "" {
		cfg.Market.Timezone = v
	}
	if v := os.Getenv("STATE_FILE"); v != "" {
		cfg.Pacing.StateFile = v
	}
	if v := os.Getenv("TICK_CRON"); v != "" {
		cfg.Pacing.TickCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}

	// Defaults
	if cfg.Storefront.VariantID == 0 {
		cfg.Storefront.VariantID = 54597229150532
	}
	if cfg.Storefront.UnitPrice == 0 {
		cfg.Storefront.UnitPrice = 49.95
	}
	if cfg.Storefront.SubmitTimeoutSeconds == 0 {
		cfg.Storefront.SubmitTimeoutSeconds = 15
	}
	if cfg.Storefront.MaxOrdersPerMinute == 0 {
		cfg.Storefront.MaxOrdersPerMinute = 6
	}
	if cfg.Revenue.MinDaily == 0 {
		cfg.Revenue.MinDaily = 2500
	}
	if cfg.Revenue.MaxDaily == 0 {
		cfg.Revenue.MaxDaily = 4500
	}
	if cfg.Market.Timezone == "" {
		cfg.Market.Timezone = "Europe/Paris"
	}
	if cfg.Market.OpenHour == 0 {
		cfg.Market.OpenHour = 8
	}
	if cfg.Market.CloseHour == 0 {
		cfg.Market.CloseHour = 24
	}
	if len(cfg.Slots) == 0 {
		cfg.Slots = []model.Slot{
			{StartHour: 8, EndHour: 12, TargetFraction: 0.20},
			{StartHour: 12, EndHour: 14, TargetFraction: 0.15},
			{StartHour: 14, EndHour: 18, TargetFraction: 0.25},
			{StartHour: 18, EndHour: 21, TargetFraction: 0.25},
			{StartHour: 21, EndHour: 24, TargetFraction: 0.15},
		}
	}
	if cfg.Traffic.CartAddProbMin == 0 && cfg.Traffic.CartAddProbMax == 0 {
		cfg.Traffic.CartAddProbMin = 0.25
		cfg.Traffic.CartAddProbMax = 0.45
	}
	if cfg.Traffic.ConvertProbMin == 0 && cfg.Traffic.ConvertProbMax == 0 {
		cfg.Traffic.ConvertProbMin = 0.10
		cfg.Traffic.ConvertProbMax = 0.25
	}
	if cfg.Pacing.StateFile == "" {
		cfg.Pacing.StateFile = "data/daily_state.json"
	}
	if cfg.Pacing.TickCron == "" {
		// Every 4 minutes during the default operating window.
		cfg.Pacing.TickCron = "0 */4 8-23 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/store_pulse.db"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
// Missing storefront credentials are deliberately not an error here:
// the pacer runs without them and skips conversions instead.
func (c *Config) Validate() error {
	if c.Revenue.MinDaily <= 0 || c.Revenue.MaxDaily <= 0 {
		return fmt.Errorf("revenue.min_daily and revenue.max_daily must be positive")
	}
	if c.Revenue.MinDaily > c.Revenue.MaxDaily {
		return fmt.Errorf("revenue.min_daily (%d) exceeds revenue.max_daily (%d)",
			c.Revenue.MinDaily, c.Revenue.MaxDaily)
	}
	if c.Storefront.UnitPrice <= 0 {
		return fmt.Errorf("storefront.unit_price must be positive")
	}
	if c.Market.OpenHour < 0 || c.Market.CloseHour > 24 || c.Market.OpenHour >= c.Market.CloseHour {
		return fmt.Errorf("market hours [%d,%d) are not a valid window",
			c.Market.OpenHour, c.Market.CloseHour)
	}
	for _, s := range c.Slots {
		if s.StartHour >= s.EndHour {
			return fmt.Errorf("slot [%d,%d) is empty", s.StartHour, s.EndHour)
		}
		if s.TargetFraction <= 0 || s.TargetFraction > 1 {
			return fmt.Errorf("slot [%d,%d) target_fraction %.3f outside (0,1]",
				s.StartHour, s.EndHour, s.TargetFraction)
		}
	}
	if c.Traffic.CartAddProbMin < 0 || c.Traffic.CartAddProbMax > 1 ||
		c.Traffic.CartAddProbMin > c.Traffic.CartAddProbMax {
		return fmt.Errorf("traffic.cart_add_prob range [%.2f,%.2f] invalid",
			c.Traffic.CartAddProbMin, c.Traffic.CartAddProbMax)
	}
	if c.Traffic.ConvertProbMin < 0 || c.Traffic.ConvertProbMax > 1 ||
		c.Traffic.ConvertProbMin > c.Traffic.ConvertProbMax {
		return fmt.Errorf("traffic.convert_prob range [%.2f,%.2f] invalid",
			c.Traffic.ConvertProbMin, c.Traffic.ConvertProbMax)
	}
	return nil
}

// HasCredentials reports whether everything required to submit an order
// to the storefront is configured.
func (c *Config) HasCredentials() bool {
	return c.Storefront.StoreURL != "" &&
		c.Storefront.APIKey != "" &&
		c.Storefront.Password != "" &&
		c.Storefront.VariantID != 0
}
