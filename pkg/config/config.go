package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Recommend RecommendConfig
	FaceScan  FaceScanConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
	TTLHours  int
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type RecommendConfig struct {
	StandardDepth int
	PremiumDepth  int
	RoutineSize   int
}

type FaceScanConfig struct {
	// Analyzer is "stub" or "gemini"
	Analyzer       string
	GeminiAPIKey   string
	GeminiModel    string
	ScanTokenKey   string
	MaxImageBytes  int64
	RatePerMinute  int
	QuestionTTLMin int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Glow Skincare API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: []string{getEnv("CORS_ORIGIN", "http://localhost:5173"), "http://localhost:8080"},
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "glow_skincare"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
			TTLHours:  getEnvInt("JWT_TTL_HOURS", 24),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Recommend: RecommendConfig{
			StandardDepth: getEnvInt("RECOMMEND_STANDARD_DEPTH", 3),
			PremiumDepth:  getEnvInt("RECOMMEND_PREMIUM_DEPTH", 6),
			RoutineSize:   getEnvInt("RECOMMEND_ROUTINE_SIZE", 8),
		},
		FaceScan: FaceScanConfig{
			Analyzer:       getEnv("FACE_ANALYZER", "stub"),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			ScanTokenKey:   getEnv("SCAN_TOKEN_KEY", ""),
			MaxImageBytes:  int64(getEnvInt("FACE_SCAN_MAX_IMAGE_BYTES", 5<<20)),
			RatePerMinute:  getEnvInt("FACE_SCAN_RATE_PER_MINUTE", 10),
			QuestionTTLMin: getEnvInt("QUESTIONNAIRE_TTL_MINUTES", 24*60),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("missing jwt secret")
	}

	if c.Database.Password == "" {
		return errors.New("missing database password")
	}

	switch len(c.FaceScan.ScanTokenKey) {
	case 16, 24, 32:
	default:
		return errors.New("scan token key must be 16, 24 or 32 bytes")
	}

	if c.FaceScan.Analyzer == "gemini" && c.FaceScan.GeminiAPIKey == "" {
		return errors.New("missing gemini api key for gemini face analyzer")
	}

	if c.Recommend.StandardDepth < 2 || c.Recommend.PremiumDepth < 2 {
		return errors.New("paid recommendation depth must be at least 2")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return n
}
