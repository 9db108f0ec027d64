package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	DataDir     string
	JWTSecret   string
	JWTExpire   string
	FrontendURL string

	FirebaseServiceAccountPath string
	GoogleClientID             string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		DataDir:     getEnv("DATA_DIR", "data"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTExpire:   getEnv("JWT_EXPIRE_HOURS", "24"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "firebase-service-account.json"),
		GoogleClientID:             getEnv("GOOGLE_CLIENT_ID", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
