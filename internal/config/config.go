package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"anoa.com/portfoliocms/pkg/database"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string

	DatabaseURL string
	DBDebug     bool
	RedisURL    string

	MeiliSearchHost string
	MeiliMasterKey  string

	StorageDriver          string
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string
	S3Endpoint             string
	S3Region               string
	S3AccessKeyID          string
	S3AccessKeySecret      string
	S3Bucket               string
	S3PublicURL            string
	UploadMaxWidth         int
	UploadMaxBytes         int64

	JWTSecret         string
	JWTTTL            time.Duration
	RefreshTokenTTL   time.Duration
	AllowRegistration bool

	AdminEmail    string
	AdminUsername string
	AdminPassword string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
	SMTPFromName string

	RateLimitContact  time.Duration
	ViewSyncInterval  time.Duration
	ExposeErrorDetail bool
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")

	cfg := &Config{
		AppEnv:         appEnv,
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		StorageDriver:          getEnv("STORAGE_DRIVER", "cloudinary"),
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "portfolio"),
		S3Endpoint:             os.Getenv("S3_ENDPOINT"),
		S3Region:               getEnv("S3_REGION", "auto"),
		S3AccessKeyID:          os.Getenv("S3_ACCESS_KEY_ID"),
		S3AccessKeySecret:      os.Getenv("S3_ACCESS_KEY_SECRET"),
		S3Bucket:               os.Getenv("S3_BUCKET"),
		S3PublicURL:            os.Getenv("S3_PUBLIC_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Portfolio"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = database.BuildDSN(
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASS"),
			getEnv("DB_NAME", "portfolio"),
			getEnv("DB_PORT", "5432"),
		)
	}

	var err error
	if cfg.DBDebug, err = parseBool("DB_DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.AllowRegistration, err = parseBool("ALLOW_REGISTRATION", false); err != nil {
		return nil, err
	}
	// diagnostics in error envelopes default to on only for development
	if cfg.ExposeErrorDetail, err = parseBool("EXPOSE_ERROR_DETAIL", cfg.AppEnv == "development"); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = parseInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.UploadMaxWidth, err = parseInt("UPLOAD_MAX_WIDTH", 1920); err != nil {
		return nil, err
	}
	maxMB, err := parseInt("UPLOAD_MAX_MB", 10)
	if err != nil {
		return nil, err
	}
	cfg.UploadMaxBytes = int64(maxMB) << 20

	if cfg.JWTTTL, err = parseDuration("JWT_TTL", "15m"); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = parseDuration("REFRESH_TOKEN_TTL", "720h"); err != nil {
		return nil, err
	}
	if cfg.RateLimitContact, err = parseDuration("RATE_LIMIT_CONTACT", "1m"); err != nil {
		return nil, err
	}
	if cfg.ViewSyncInterval, err = parseDuration("VIEW_SYNC_INTERVAL", "1m"); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "change-me"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func parseInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
