package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string   `mapstructure:"PORT"`
	Env                string   `mapstructure:"ENV"`
	CORSOrigins        []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS       float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst     int      `mapstructure:"RATE_LIMIT_BURST"`
	DoctorDataFile     string   `mapstructure:"DOCTOR_DATA_FILE"`
	BookingDelayMS     int      `mapstructure:"BOOKING_DELAY_MS"`
	BookingSuccessRate float64  `mapstructure:"BOOKING_SUCCESS_RATE"`
	SessionTTLMinutes  int      `mapstructure:"SESSION_TTL_MINUTES"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("BOOKING_DELAY_MS", 1500)
	v.SetDefault("BOOKING_SUCCESS_RATE", 0.9)
	v.SetDefault("SESSION_TTL_MINUTES", 30)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("DOCTOR_DATA_FILE")
	v.BindEnv("BOOKING_DELAY_MS")
	v.BindEnv("BOOKING_SUCCESS_RATE")
	v.BindEnv("SESSION_TTL_MINUTES")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// BookingDelay returns the simulated booking latency as a duration.
func (c *Config) BookingDelay() time.Duration {
	return time.Duration(c.BookingDelayMS) * time.Millisecond
}

// SessionTTL returns how long an idle booking session is retained.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if c.BookingSuccessRate < 0 || c.BookingSuccessRate > 1 {
		return fmt.Errorf("BOOKING_SUCCESS_RATE must be between 0 and 1, got %v", c.BookingSuccessRate)
	}
	if c.BookingDelayMS < 0 {
		return fmt.Errorf("BOOKING_DELAY_MS must not be negative, got %d", c.BookingDelayMS)
	}
	if c.SessionTTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", c.SessionTTLMinutes)
	}
	return nil
}
