package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Extractor ExtractorConfig
	LLM       LLMConfig
	Pipeline  PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ExtractorConfig holds document text extraction configuration
type ExtractorConfig struct {
	PDFToText string        // pdftotext binary; text/layout extraction is external
	Tesseract string        // tesseract binary, for image uploads
	Timeout   time.Duration // per-document extraction deadline
}

// LLMConfig holds model-service configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	// MaxInputChars caps document text sent to the model; longer inputs are
	// truncated and flagged, which costs TruncationPenalty off confidence.
	MaxInputChars     int
	TruncationPenalty float32
	Timeout           time.Duration
	MaxRetries        int
	RetryBaseDelay    time.Duration
}

// PipelineConfig holds the tunable pipeline policy knobs. Thresholds are
// policy, not mechanism; none of these are hard-coded at call sites.
type PipelineConfig struct {
	DefaultCurrency       string
	VendorMatchThreshold  float64 // >= here: auto-link and append alias
	VendorReviewThreshold float64 // [review, match): hold for manual confirmation
	DuplicateThreshold    float64 // fuzzy score >= here: probable duplicate
	AmountTolerance       float64 // currency units, for sums and fuzzy amounts
	DateWindowDays        int     // fuzzy duplicate date proximity window
	ViolationPenalty      float32 // confidence cost per soft validation violation
	LeaseTTL              time.Duration
	Workers               int
	QueueSize             int
	ProcessTimeout        time.Duration
}

// LoadConfig loads configuration from the environment, reading a local
// .env file first when one exists.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extractor: ExtractorConfig{
			PDFToText: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Tesseract: getEnv("TESSERACT_BIN", "tesseract"),
			Timeout:   getEnvAsDuration("EXTRACTOR_TIMEOUT", 30*time.Second),
		},
		LLM: LLMConfig{
			BaseURL:           getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:             getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:            getEnv("OPENAI_API_KEY", ""),
			Temperature:       getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			MaxTokens:         getEnvAsInt("OPENAI_MAX_TOKENS", 2000),
			MaxInputChars:     getEnvAsInt("OPENAI_MAX_INPUT_CHARS", 16000),
			TruncationPenalty: getEnvAsFloat32("OPENAI_TRUNCATION_PENALTY", 0.10),
			Timeout:           getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			MaxRetries:        getEnvAsInt("OPENAI_MAX_RETRIES", 3),
			RetryBaseDelay:    getEnvAsDuration("OPENAI_RETRY_BASE_DELAY", time.Second),
		},
		Pipeline: PipelineConfig{
			DefaultCurrency:       getEnv("DEFAULT_CURRENCY", "USD"),
			VendorMatchThreshold:  getEnvAsFloat64("VENDOR_MATCH_THRESHOLD", 0.85),
			VendorReviewThreshold: getEnvAsFloat64("VENDOR_REVIEW_THRESHOLD", 0.60),
			DuplicateThreshold:    getEnvAsFloat64("DUPLICATE_THRESHOLD", 0.80),
			AmountTolerance:       getEnvAsFloat64("AMOUNT_TOLERANCE", 0.01),
			DateWindowDays:        getEnvAsInt("DUPLICATE_DATE_WINDOW_DAYS", 5),
			ViolationPenalty:      getEnvAsFloat32("VALIDATION_VIOLATION_PENALTY", 0.05),
			LeaseTTL:              getEnvAsDuration("PIPELINE_LEASE_TTL", 5*time.Minute),
			Workers:               getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:             getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout:        getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 3*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.VendorReviewThreshold > c.Pipeline.VendorMatchThreshold {
		return NewAppError("CONFIG_ERROR", "VENDOR_REVIEW_THRESHOLD must not exceed VENDOR_MATCH_THRESHOLD", ErrInvalidInput)
	}
	if c.Pipeline.DuplicateThreshold <= 0 || c.Pipeline.DuplicateThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "DUPLICATE_THRESHOLD must be in (0, 1]", ErrInvalidInput)
	}
	return nil
}
