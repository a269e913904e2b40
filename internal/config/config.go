package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURL      string
	DBName        string
	AdminPassword string
	Port          string
	StaticDir     string
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logrus.Warn("⚠️ Error loading .env file: ", err)
		} else {
			logrus.Info("✅ .env file loaded successfully")
		}
	} else {
		logrus.Info("🌐 Using system environment variables")
	}

	// Los valores por defecto sirven solo para desarrollo local
	return &Config{
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "unhinged_listings"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),
		Port:          getEnv("PORT", "8080"),
		StaticDir:     getEnv("STATIC_DIR", "./static"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
