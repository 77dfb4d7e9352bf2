package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	LogLevel      string
	BackendConfig BackendConfig
	ProductConfig ProductConfig
	ImageConfig   ImageConfig
	FormConfig    FormConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
}

type BackendConfig struct {
	Host            string
	ComponentAPIKey string
	// Zero disables the client timeout.
	Timeout time.Duration
}

// ProductConfig carries the values every submitted product is stamped with.
type ProductConfig struct {
	AdminIdentity     string
	DefaultStartPrice int64
	CategoryFile      string
	Categories        []string
}

type ImageConfig struct {
	MaxDimension int
	// Uploads declaring more pixels than this are rejected before decoding.
	MaxPixels         int
	EncodeConcurrency int
}

type FormConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
	// Upper bound on the time a submit spends publishing its outcome, retries included.
	PublishTimeout time.Duration
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "8081"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BackendConfig: BackendConfig{
			Host:            getEnv("BACKEND_HOST", "http://43.200.171.174"),
			ComponentAPIKey: os.Getenv("COMPONENT_API_KEY"),
			Timeout:         getEnvDuration("HTTP_CLIENT_TIMEOUT", 0),
		},
		ProductConfig: ProductConfig{
			AdminIdentity:     getEnv("ADMIN_IDENTITY", "daw916@naver.com"),
			DefaultStartPrice: int64(getEnvInt("DEFAULT_START_PRICE", 9999)),
			CategoryFile:      getEnv("CATEGORY_FILE", "data/category.json"),
		},
		ImageConfig: ImageConfig{
			MaxDimension:      getEnvInt("IMAGE_MAX_DIMENSION", 0),
			MaxPixels:         getEnvInt("IMAGE_MAX_PIXELS", 40_000_000),
			EncodeConcurrency: getEnvInt("IMAGE_ENCODE_CONCURRENCY", 4),
		},
		FormConfig: FormConfig{
			SessionTTL:    getEnvDuration("FORM_SESSION_TTL", 2*time.Hour),
			SweepInterval: getEnvDuration("FORM_SWEEP_INTERVAL", time.Minute),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:  os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:    getEnv("BROKER_TOPIC", "admin-product-events"),
			PublishTimeout: getEnvDuration("PUBLISH_TIMEOUT", 2*time.Second),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}

// LoadCategories reads the category list once; the file holds a JSON array of names.
func (c *Config) LoadCategories() error {
	raw, err := os.ReadFile(c.ProductConfig.CategoryFile)
	if err != nil {
		return fmt.Errorf("failed to read category file: %w", err)
	}

	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return fmt.Errorf("failed to parse category file: %w", err)
	}

	c.ProductConfig.Categories = categories
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
