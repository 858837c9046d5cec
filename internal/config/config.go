// config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	AdminToken string

	// Simulador de pago
	PaymentDelay       time.Duration
	PaymentSuccessRate float64
	GatewayFailureRate float64

	// Generador de notificaciones simuladas
	NotifyMinInterval time.Duration
	NotifyMaxInterval time.Duration
	NotifyTTL         time.Duration
}

func Load() *Config {
	// .env es opcional; si no existe se usan los valores del entorno
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		AdminToken:         getEnv("ADMIN_TOKEN", "admin123"), // credencial ilustrativa, no es seguridad real
		PaymentDelay:       getDuration("PAYMENT_DELAY", 3*time.Second),
		PaymentSuccessRate: getFloat("PAYMENT_SUCCESS_RATE", 0.7),
		GatewayFailureRate: getFloat("GATEWAY_FAILURE_RATE", 0),
		NotifyMinInterval:  getDuration("NOTIFY_MIN_INTERVAL", 30*time.Second),
		NotifyMaxInterval:  getDuration("NOTIFY_MAX_INTERVAL", 60*time.Second),
		NotifyTTL:          getDuration("NOTIFY_TTL", 10*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
