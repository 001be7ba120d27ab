package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Recaptcha RecaptchaConfig `toml:"recaptcha"`
	Admin     AdminConfig     `toml:"admin"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
	QueryTimeout    int    `toml:"query_timeout"`     // seconds, per store call
}

// DSN returns the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig booking business rules. This section is the single source of
// truth for the forward horizon, operating days and exclusion dates; no
// component re-derives them.
type BookingConfig struct {
	CapacityPerDate  int      `toml:"capacity_per_date"`
	OperatingDays    []string `toml:"operating_days"` // weekday names
	HorizonDays      int      `toml:"horizon_days"`   // forward window from today, inclusive
	Holidays         []string `toml:"holidays"`       // "YYYY-MM-DD" exclusion dates
	CourseStart      string   `toml:"course_start"`   // "HH:MM"
	CourseEnd        string   `toml:"course_end"`     // "HH:MM"
	CoursePriceCZK   int      `toml:"course_price_czk"`
	CapacityCacheTTL int      `toml:"capacity_cache_ttl"` // seconds
}

// OperatingWeekdays parses OperatingDays into time.Weekday values.
func (b BookingConfig) OperatingWeekdays() ([]time.Weekday, error) {
	names := map[string]time.Weekday{
		"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
		"wednesday": time.Wednesday, "thursday": time.Thursday,
		"friday": time.Friday, "saturday": time.Saturday,
	}
	days := make([]time.Weekday, 0, len(b.OperatingDays))
	for _, name := range b.OperatingDays {
		day, ok := names[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("config: unknown operating day %q", name)
		}
		days = append(days, day)
	}
	return days, nil
}

// RecaptchaConfig challenge provider settings. Keys live in the database
// (recaptcha_settings); this section only carries endpoint and thresholds.
type RecaptchaConfig struct {
	VerifyURL        string  `toml:"verify_url"`
	Timeout          int     `toml:"timeout"`           // seconds, siteverify round-trip
	ChallengeTimeout int     `toml:"challenge_timeout"` // seconds, waiting for a token
	MinScore         float64 `toml:"min_score"`
}

// AdminConfig admin API settings.
type AdminConfig struct {
	Token string `toml:"token"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			QueryTimeout:    8,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "latte-art-bookings",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			CapacityPerDate:  5,
			OperatingDays:    []string{"wednesday", "thursday", "friday"},
			HorizonDays:      60,
			CourseStart:      "09:00",
			CourseEnd:        "17:00",
			CoursePriceCZK:   5000,
			CapacityCacheTTL: 60,
		},
		Recaptcha: RecaptchaConfig{
			VerifyURL:        "https://www.google.com/recaptcha/api/siteverify",
			Timeout:          10,
			ChallengeTimeout: 20,
			MinScore:         0.5,
		},
	}
}

func (c *Config) validate() error {
	if c.Booking.CapacityPerDate <= 0 {
		return fmt.Errorf("config: booking.capacity_per_date must be positive")
	}
	if c.Booking.HorizonDays <= 0 {
		return fmt.Errorf("config: booking.horizon_days must be positive")
	}
	if len(c.Booking.OperatingDays) == 0 {
		return fmt.Errorf("config: booking.operating_days must not be empty")
	}
	if _, err := c.Booking.OperatingWeekdays(); err != nil {
		return err
	}
	if _, err := types.NewTimeStringFromString(c.Booking.CourseStart); err != nil {
		return fmt.Errorf("config: booking.course_start: %w", err)
	}
	if _, err := types.NewTimeStringFromString(c.Booking.CourseEnd); err != nil {
		return fmt.Errorf("config: booking.course_end: %w", err)
	}
	if c.Recaptcha.MinScore < 0 || c.Recaptcha.MinScore > 1 {
		return fmt.Errorf("config: recaptcha.min_score must be within [0, 1]")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("config: database.query_timeout must be positive")
	}
	return nil
}
