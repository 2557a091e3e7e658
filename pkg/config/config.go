package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	CORS     CORSConfig
	Log      LogConfig
	Upload   UploadConfig
	Storage  StorageConfig
	Payment  PaymentConfig
	Receipt  ReceiptConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// CookieConfig controls the session cookie the login endpoint sets.
type CookieConfig struct {
	Name   string
	Domain string
	Path   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// UploadConfig bounds marksheet uploads before they reach storage.
type UploadConfig struct {
	MaxFileSizeBytes  int64
	AllowedExtensions []string
	StoreTimeout      time.Duration
}

// StorageConfig selects and configures the marksheet object store.
type StorageConfig struct {
	Driver string // "local" or "s3"

	LocalDir        string
	SignedURLSecret string
	SignedURLTTL    time.Duration
	PublicBaseURL   string

	S3Bucket          string
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3KeyPrefix       string
}

// PaymentConfig holds the simulated payment defaults.
type PaymentConfig struct {
	DefaultMode string
	FeeAmount   float64
}

// ReceiptConfig carries the institution identity printed on receipts.
type ReceiptConfig struct {
	CollegeName    string
	CollegeUnit    string
	CollegeLogoURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.Cookie = CookieConfig{
		Name:   v.GetString("SESSION_COOKIE_NAME"),
		Domain: v.GetString("SESSION_COOKIE_DOMAIN"),
		Path:   v.GetString("SESSION_COOKIE_PATH"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	maxUploadSize := v.GetInt64("UPLOAD_MAX_FILE_SIZE")
	if maxUploadSize <= 0 {
		maxUploadSize = 20 * 1024 * 1024
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeBytes:  maxUploadSize,
		AllowedExtensions: splitAndTrim(v.GetString("UPLOAD_ALLOWED_EXTENSIONS")),
		StoreTimeout:      parseDuration(v.GetString("UPLOAD_STORE_TIMEOUT"), 30*time.Second),
	}

	cfg.Storage = StorageConfig{
		Driver:            v.GetString("STORAGE_DRIVER"),
		LocalDir:          v.GetString("STORAGE_LOCAL_DIR"),
		SignedURLSecret:   v.GetString("STORAGE_SIGNED_URL_SECRET"),
		SignedURLTTL:      parseDuration(v.GetString("STORAGE_SIGNED_URL_TTL"), 24*time.Hour),
		PublicBaseURL:     v.GetString("STORAGE_PUBLIC_BASE_URL"),
		S3Bucket:          v.GetString("S3_BUCKET"),
		S3Endpoint:        v.GetString("S3_ENDPOINT"),
		S3Region:          v.GetString("S3_REGION"),
		S3AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		S3KeyPrefix:       v.GetString("S3_KEY_PREFIX"),
	}

	cfg.Payment = PaymentConfig{
		DefaultMode: v.GetString("PAYMENT_DEFAULT_MODE"),
		FeeAmount:   v.GetFloat64("PAYMENT_FEE_AMOUNT"),
	}

	cfg.Receipt = ReceiptConfig{
		CollegeName:    v.GetString("RECEIPT_COLLEGE_NAME"),
		CollegeUnit:    v.GetString("RECEIPT_COLLEGE_UNIT"),
		CollegeLogoURL: v.GetString("RECEIPT_COLLEGE_LOGO_URL"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "clc_portal")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "clc-api")

	v.SetDefault("SESSION_COOKIE_NAME", "accessToken")
	v.SetDefault("SESSION_COOKIE_DOMAIN", "")
	v.SetDefault("SESSION_COOKIE_PATH", "/")

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("UPLOAD_MAX_FILE_SIZE", 20*1024*1024)
	v.SetDefault("UPLOAD_ALLOWED_EXTENSIONS", ".jpg,.jpeg,.png,.webp")
	v.SetDefault("UPLOAD_STORE_TIMEOUT", "30s")

	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("STORAGE_LOCAL_DIR", "./marksheets")
	v.SetDefault("STORAGE_SIGNED_URL_SECRET", "dev_marksheets_secret")
	v.SetDefault("STORAGE_SIGNED_URL_TTL", "24h")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_KEY_PREFIX", "marksheets")

	v.SetDefault("PAYMENT_DEFAULT_MODE", "Online")
	v.SetDefault("PAYMENT_FEE_AMOUNT", 2.00)

	v.SetDefault("RECEIPT_COLLEGE_NAME", "GORELAL MEHTA COLLEGE, BANMANKHI, PURNEA")
	v.SetDefault("RECEIPT_COLLEGE_UNIT", "(A Constituent Unit of Purnea University, Purnia (Bihar))")
	v.SetDefault("RECEIPT_COLLEGE_LOGO_URL", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
