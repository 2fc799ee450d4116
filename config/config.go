package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	UploadDir string
}

var cfg Config

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg = Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "placement_portal"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", ""),

		SMTPHost: getEnv("EMAIL_HOST", ""),
		SMTPPort: getEnv("EMAIL_PORT", "587"),
		SMTPUser: getEnv("EMAIL_USER", ""),
		SMTPPass: getEnv("EMAIL_PASS", ""),
		MailFrom: getEnv("EMAIL_FROM", "Placement Portal <noreply@placement.local>"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
	}
	return cfg
}

func JWTSecret() string {
	return cfg.JWTSecret
}

func UploadDir() string {
	return cfg.UploadDir
}
