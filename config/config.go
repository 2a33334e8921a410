package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	// Sealink external API settings
	SealinkBaseURL  string
	SealinkUserName string
	SealinkToken    string
	// Makruzz external API settings
	MakruzzBaseURL  string
	MakruzzUsername string
	MakruzzPassword string
	// Green Ocean external API settings
	GreenOceanBaseURL    string
	GreenOceanPublicKey  string
	GreenOceanPrivateKey string
	// Per-operator call budget for search/seat-layout requests
	OperatorTimeout time.Duration
	// Probe budget for health checks
	HealthTimeout time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		Port:                 os.Getenv("PORT"),
		SMTPHost:             os.Getenv("SMTP_HOST"),
		SMTPPort:             os.Getenv("SMTP_PORT"),
		SMTPUser:             os.Getenv("SMTP_USER"),
		SMTPPass:             os.Getenv("SMTP_PASS"),
		SealinkBaseURL:       getenvOrDefault("SEALINK_BASE_URL", "https://api.sealink.in"),
		SealinkUserName:      os.Getenv("SEALINK_USERNAME"),
		SealinkToken:         os.Getenv("SEALINK_TOKEN"),
		MakruzzBaseURL:       getenvOrDefault("MAKRUZZ_BASE_URL", "https://api.makruzz.com"),
		MakruzzUsername:      os.Getenv("MAKRUZZ_USERNAME"),
		MakruzzPassword:      os.Getenv("MAKRUZZ_PASSWORD"),
		GreenOceanBaseURL:    getenvOrDefault("GREENOCEAN_BASE_URL", "https://api.greenoceanseaways.com"),
		GreenOceanPublicKey:  os.Getenv("GREENOCEAN_PUBLIC_KEY"),
		GreenOceanPrivateKey: os.Getenv("GREENOCEAN_PRIVATE_KEY"),
		OperatorTimeout:      time.Duration(getenvInt("OPERATOR_TIMEOUT_SECONDS", 15)) * time.Second,
		HealthTimeout:        time.Duration(getenvInt("HEALTH_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
