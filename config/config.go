// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"fmt"     // String formatting
	"log"     // Logging .env problems
	"os"      // For reading environment variables
	"strconv" // Integer parsing

	"github.com/joho/godotenv" // .env file loading
)

type Config struct { // Config struct holds all configuration values
	Port              string // HTTP listen port
	GinMode           string // gin mode: debug, release or test
	DBDriver          string // sqlite, mysql or postgres
	DBDSN             string // Driver-specific data source name
	ModelPath         string // Primary classifier artifact
	FallbackModelPath string // Classifier artifact reloaded on every fallback call
	OnnxRuntimeLib    string // Path to the onnxruntime shared library
	BcryptCost        int    // Password hashing cost
	MaxUploadMB       int64  // Multipart memory limit in MiB
	MQTTBroker        string // Address of the MQTT broker, empty disables events
	MQTTTopic         string // Topic for prediction events
	MQTTClientID      string // MQTT client identifier
}

func Load() *Config { // Load reads config from .env, environment variables or uses defaults
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) { // A missing .env is fine
		log.Printf("config: ignoring .env: %v", err)
	}
	return &Config{
		Port:              getEnv("PORT", "3000"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBDSN:             getEnv("DB_DSN", "caloriq.db"),
		ModelPath:         getEnv("MODEL_PATH", "best_food_model.onnx"),
		FallbackModelPath: getEnv("FALLBACK_MODEL_PATH", "rawModelv1.onnx"),
		OnnxRuntimeLib:    getEnv("ONNXRUNTIME_LIB", ""),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		MaxUploadMB:       int64(getEnvInt("MAX_UPLOAD_MB", 50)),
		MQTTBroker:        getEnv("MQTT_BROKER", ""),
		MQTTTopic:         getEnv("MQTT_TOPIC", "caloriq/predictions"),
		MQTTClientID:      getEnv("MQTT_CLIENT_ID", "caloriq-backend"),
	}
}

// String masks the DSN, which may carry credentials.
func (c *Config) String() string {
	mqtt := c.MQTTBroker
	if mqtt == "" {
		mqtt = "disabled"
	}
	return fmt.Sprintf("Config{Port: %s, DB: %s (dsn masked), Model: %s, Fallback: %s, MQTT: %s}",
		c.Port, c.DBDriver, c.ModelPath, c.FallbackModelPath, mqtt)
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getEnvInt(key string, fallback int) int { // Helper to get an integer env var or fallback
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 { // Bad values fall back instead of failing startup
		log.Printf("config: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
