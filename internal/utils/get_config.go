package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Application
	AppPort     string `yaml:"APP_PORT"`
	AppTimezone string `yaml:"APP_TIMEZONE"`
	LogLevel    string `yaml:"LOG_LEVEL"`
	LogFile     string `yaml:"LOG_FILE"`

	// Store location and weather provider
	StoreLat        string `yaml:"STORE_LAT"`
	StoreLon        string `yaml:"STORE_LON"`
	WeatherURL      string `yaml:"WEATHER_URL"`
	WeatherCacheTTL string `yaml:"WEATHER_CACHE_TTL"`

	// Redis, empty address disables cache and distributed lock
	RedisAddress  string `yaml:"REDIS_ADDRESS"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`

	// Mailing configuration
	SMTPHost            string `yaml:"SMTP_HOST"`
	SMTPPort            string `yaml:"SMTP_PORT"`
	SMTPSenderName      string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail       string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword    string `yaml:"SMTP_AUTH_PASSWORD"`
	ScheduleNotifyEmail string `yaml:"SCHEDULE_NOTIFY_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

var defaults = map[string]string{
	"DB_DRIVER":         "postgres",
	"DB_PATH":           "prep-scheduler.db",
	"APP_PORT":          "8000",
	"APP_TIMEZONE":      "Asia/Taipei",
	"LOG_LEVEL":         "info",
	"LOG_FILE":          "./logs/app.log",
	"STORE_LAT":         "22.989382341539695",
	"STORE_LON":         "120.20492352698653",
	"WEATHER_URL":       "https://api.open-meteo.com/v1/forecast",
	"WEATHER_CACHE_TTL": "10m",
}

func LoadConfig() {
	LoadConfigFrom("config.yaml")
}

// LoadConfigFrom reads .env into the process environment, then the yaml file.
// Environment variables take precedence over yaml values in GetConfig.
func LoadConfigFrom(path string) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %s\n", err)
	}

	config = Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return defaults[key]
}

func fromFile(key string) string {
	switch key {
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		return config.DBPath
	case "APP_PORT":
		return config.AppPort
	case "APP_TIMEZONE":
		return config.AppTimezone
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FILE":
		return config.LogFile
	case "STORE_LAT":
		return config.StoreLat
	case "STORE_LON":
		return config.StoreLon
	case "WEATHER_URL":
		return config.WeatherURL
	case "WEATHER_CACHE_TTL":
		return config.WeatherCacheTTL
	case "REDIS_ADDRESS":
		return config.RedisAddress
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "SCHEDULE_NOTIFY_EMAIL":
		return config.ScheduleNotifyEmail
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
