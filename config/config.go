package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Public base URL used when the app builds absolute links outside a
	// request context (capture target URLs, certificate emails).
	PublicBaseURL string

	// Headless browser capture service (browserless-compatible HTTP API)
	BrowserlessURL     string
	BrowserlessToken   string
	CaptureTimeoutSecs int

	// Generative AI flows
	GeminiApiURL string
	GeminiApiKey string

	// Transactional email
	SendgridApiKey string
	EmailSender    string

	// Certificate branding
	CertLogoPath string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		BrowserlessURL:     getEnv("BROWSERLESS_URL", "http://localhost:3001"),
		BrowserlessToken:   getEnv("BROWSERLESS_TOKEN", ""),
		CaptureTimeoutSecs: getEnvInt("CAPTURE_TIMEOUT_SECONDS", 30),

		GeminiApiURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@courseverse.io"),

		CertLogoPath: getEnv("CERT_LOGO_PATH", "./assets/logo.png"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiApiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. AI flows will be unavailable.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
