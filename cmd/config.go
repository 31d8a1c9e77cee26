package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SslMode  string
}

// DSN returns the key/value connection string understood by pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type Config struct {
	Environment string
	LogLevel    string
	HTTPPort    int
	DB          DBConfig

	AutoCancelAfter time.Duration
	RatingWindow    time.Duration
	SweepSchedule   string
	SweepBatchSize  int

	// StrictMoney makes unreadable stored amounts a load error instead of 0.00.
	StrictMoney bool
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", 8082)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("AUTO_CANCEL_AFTER", services.DefaultAutoCancelAfter)
	v.SetDefault("RATING_WINDOW", services.DefaultRatingWindow)
	v.SetDefault("SWEEP_SCHEDULE", jobs.DefaultSchedule)
	v.SetDefault("SWEEP_BATCH_SIZE", 100)
	v.SetDefault("STRICT_MONEY", false)

	cfg := Config{
		Environment: strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTPPort:    v.GetInt("HTTP_PORT"),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SslMode:  v.GetString("DB_SSLMODE"),
		},
		AutoCancelAfter: v.GetDuration("AUTO_CANCEL_AFTER"),
		RatingWindow:    v.GetDuration("RATING_WINDOW"),
		SweepSchedule:   v.GetString("SWEEP_SCHEDULE"),
		SweepBatchSize:  v.GetInt("SWEEP_BATCH_SIZE"),
		StrictMoney:     v.GetBool("STRICT_MONEY"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or out of range setting at once.
func (c Config) Validate() error {
	var errList []error

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errList = append(errList, fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTPPort))
	}
	if c.DB.Host == "" {
		errList = append(errList, errors.New("DB_HOST is required"))
	}
	if c.DB.User == "" {
		errList = append(errList, errors.New("DB_USER is required"))
	}
	if c.DB.Name == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}
	if c.AutoCancelAfter <= 0 {
		errList = append(errList, errors.New("AUTO_CANCEL_AFTER must be positive"))
	}
	if c.RatingWindow <= 0 {
		errList = append(errList, errors.New("RATING_WINDOW must be positive"))
	}
	if c.SweepBatchSize <= 0 {
		errList = append(errList, errors.New("SWEEP_BATCH_SIZE must be positive"))
	}

	return errors.Join(errList...)
}
