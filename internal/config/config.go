package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	JWTSecret       string
	MetricsUser     string
	MetricsPassword string
	PaymentDelayMs  string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Addr:            os.Getenv("ADDR"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		MetricsUser:     os.Getenv("METRICS_USER"),
		MetricsPassword: os.Getenv("METRICS_PASSWORD"),
		PaymentDelayMs:  os.Getenv("PAYMENT_DELAY_MS"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg
}
