package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig is built once at process start and shared through Get. Tests
// substitute it with Set.
type AppConfig struct {
	PaymentURL           string
	FlutterwaveBaseURL   string
	FlutterwaveSecretKey string
	GenericErrorMessage  string
	SenderEmail          string
	SenderEmailPassword  string
	SMTPHost             string
	SMTPPort             int
}

var appConfig *AppConfig

func Load() *AppConfig {
	cfg := &AppConfig{
		PaymentURL:           os.Getenv("PAYMENT_URL"),
		FlutterwaveBaseURL:   os.Getenv("FLWV_BASE_URL"),
		FlutterwaveSecretKey: os.Getenv("FLWV_SECRET_KEY"),
		GenericErrorMessage:  os.Getenv("ERROR_MESSAGE"),
		SenderEmail:          os.Getenv("SENDER_EMAIL"),
		SenderEmailPassword:  os.Getenv("SENDER_EMAIL_PASSWORD"),
		SMTPHost:             os.Getenv("SMTP_HOST"),
		SMTPPort:             587,
	}
	if cfg.FlutterwaveBaseURL == "" {
		cfg.FlutterwaveBaseURL = "https://api.flutterwave.com"
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.ionos.com"
	}
	if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		cfg.SMTPPort = port
	}
	return cfg
}

func Get() *AppConfig {
	if appConfig == nil {
		appConfig = Load()
	}
	return appConfig
}

func Set(cfg *AppConfig) {
	appConfig = cfg
}

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}
