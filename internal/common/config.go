package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Queue    QueueConfig
	Storage  StorageConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Extract  ExtractConfig
	Rules    RulesConfig
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

// ServerConfig holds the gRPC API and worker metrics listeners
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// QueueConfig holds the dispatch boundary configuration.
// An empty URL selects the in-process inline queue (local development).
type QueueConfig struct {
	URL               string
	Subject           string
	DeadLetterSubject string
	MaxAttempts       int
	ProcessTimeout    time.Duration
	// InlineSwallowErrors keeps the local inline queue's fire-and-forget
	// behavior explicit: errors are logged, never returned to the caller.
	InlineSwallowErrors bool
}

// StorageConfig points at the blob store holding uploaded files
type StorageConfig struct {
	SupabaseURL  string
	ServiceKey   string
	Bucket       string
	SignedURLTTL time.Duration
}

// OCRConfig holds local OCR and cloud fallback configuration
type OCRConfig struct {
	Tesseract           string
	TesseractLang       string
	TessdataDir         string
	ConfidenceThreshold float32
	CloudEndpoint       string
	CloudAPIKey         string
	CloudTimeout        time.Duration
	ArtifactCacheDir    string
}

// LLMConfig holds classifier-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	MaxTokens   int
	PromptChars int
}

// ExtractConfig holds pipeline thresholds
type ExtractConfig struct {
	MinTextLength      int
	TypeMatchThreshold float32
}

// RulesConfig points at the completeness engine
type RulesConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
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
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		Queue: QueueConfig{
			URL:                 getEnv("NATS_URL", ""),
			Subject:             getEnv("NATS_SUBJECT", "documents.extract"),
			DeadLetterSubject:   getEnv("NATS_DLQ_SUBJECT", "documents.extract.dlq"),
			MaxAttempts:         getEnvAsInt("QUEUE_MAX_ATTEMPTS", 3),
			ProcessTimeout:      getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 3*time.Minute),
			InlineSwallowErrors: getEnvAsBool("INLINE_SWALLOW_ERRORS", true),
		},
		Storage: StorageConfig{
			SupabaseURL:  getEnv("SUPABASE_URL", ""),
			ServiceKey:   getEnv("SUPABASE_SERVICE_KEY", ""),
			Bucket:       getEnv("STORAGE_BUCKET", "tax-documents"),
			SignedURLTTL: getEnvAsDuration("SIGNED_URL_TTL", 5*time.Minute),
		},
		OCR: OCRConfig{
			Tesseract:           getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang:       getEnv("TESSERACT_LANG", "eng+fra"),
			TessdataDir:         getEnv("TESSDATA_PREFIX", ""),
			ConfidenceThreshold: getEnvAsFloat32("OCR_CONFIDENCE_THRESHOLD", 0.70),
			CloudEndpoint:       getEnv("CLOUD_OCR_ENDPOINT", ""),
			CloudAPIKey:         getEnv("CLOUD_OCR_API_KEY", ""),
			CloudTimeout:        getEnvAsDuration("CLOUD_OCR_TIMEOUT", 30*time.Second),
			ArtifactCacheDir:    getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 15*time.Second),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 200),
			PromptChars: getEnvAsInt("CLASSIFIER_PROMPT_CHARS", 2000),
		},
		Extract: ExtractConfig{
			MinTextLength:      getEnvAsInt("MIN_TEXT_LENGTH", 50),
			TypeMatchThreshold: getEnvAsFloat32("TYPE_MATCH_THRESHOLD", 0.80),
		},
		Rules: RulesConfig{
			BaseURL: getEnv("RULES_ENGINE_URL", ""),
			Timeout: getEnvAsDuration("RULES_ENGINE_TIMEOUT", 10*time.Second),
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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

// Validate validates the loaded configuration
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
	if c.OCR.ConfidenceThreshold <= 0 || c.OCR.ConfidenceThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "OCR_CONFIDENCE_THRESHOLD must be in (0,1]", ErrInvalidInput)
	}
	if c.Extract.TypeMatchThreshold <= 0 || c.Extract.TypeMatchThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "TYPE_MATCH_THRESHOLD must be in (0,1]", ErrInvalidInput)
	}
	if c.Queue.URL != "" && c.Queue.Subject == "" {
		return NewAppError("CONFIG_ERROR", "NATS_SUBJECT is required when NATS_URL is set", ErrInvalidInput)
	}
	return nil
}
