package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config chứa toàn bộ application configuration, populate từ environment variables
type Config struct {
	App       AppConfig
	Store     StoreConfig
	Blob      BlobConfig
	MinIO     MinIOConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Mail      MailConfig
	JWT       JWTConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Site      SiteConfig
	Jobs      JobConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	PublicBaseURL  string // https://qbrain.in, dùng cho RSS/sitemap
	AllowedOrigins []string
	CacheTTL       time.Duration
}

// =====================================================
// STORAGE
// =====================================================

type StoreConfig struct {
	Driver     string // postgres, mongo, sqlite
	MongoURI   string
	MongoDB    string
	SQLitePath string
}

type BlobConfig struct {
	Driver   string // minio, local
	LocalDir string
	// BaseURL là prefix public của file local, vd: http://localhost:3001/uploads
	BaseURL string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // để trống -> http(s)://Endpoint
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// =====================================================
// MAIL
// =====================================================

type SMTPConfig struct {
	Host               string
	Port               int
	User               string
	Pass               string
	InsecureSkipVerify bool
}

type MailConfig struct {
	AdminEmail          string
	From                string
	ContactFromName     string
	ApplicationFromName string
	TeamFromName        string
	Delivery            string // direct, queue
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt
}

type RateLimitConfig struct {
	SubmitPerMinute int
	SubmitBurst     int
	LoginPerMinute  int
	LoginBurst      int
}

type SiteConfig struct {
	ContentPath string // rỗng -> dùng file embed
}

type JobConfig struct {
	DigestCron string
	DigestTo   string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	env := getEnv("NODE_ENV", getEnv("APP_ENV", "development"))
	port := getEnv("PORT", "3001")
	smtpUser := getEnv("SMTP_USER", "")
	adminEmail := getEnv("ADMIN_EMAIL", smtpUser)

	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Qbrain API"),
			Environment:    env,
			Port:           port,
			Version:        getEnv("APP_VERSION", "1.0.0"),
			PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
			AllowedOrigins: allowedOrigins(env, getEnv("ALLOWED_ORIGINS", "")),
			CacheTTL:       getEnvDuration("CACHE_TTL", 10*time.Minute),
		},
		Store: StoreConfig{
			Driver:     getEnv("STORE_DRIVER", "postgres"),
			MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:    getEnv("MONGO_DB", "qbrain"),
			SQLitePath: getEnv("SQLITE_PATH", "data/qbrain.db"),
		},
		Blob: BlobConfig{
			Driver:   getEnv("BLOB_DRIVER", "local"),
			LocalDir: getEnv("LOCAL_UPLOAD_DIR", "uploads"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "qbrain"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: strings.TrimRight(getEnv("MINIO_PUBLIC_URL", ""), "/"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:               getEnv("SMTP_HOST", "smtp.hostinger.com"),
			Port:               getEnvInt("SMTP_PORT", 587),
			User:               smtpUser,
			Pass:               getEnv("SMTP_PASS", ""),
			InsecureSkipVerify: getEnvBool("SMTP_INSECURE_SKIP_VERIFY", true),
		},
		Mail: MailConfig{
			AdminEmail:          adminEmail,
			From:                getEnv("MAIL_FROM", smtpUser),
			ContactFromName:     getEnv("MAIL_CONTACT_FROM_NAME", "Qbrain Contact Form"),
			ApplicationFromName: getEnv("MAIL_APPLICATION_FROM_NAME", "Qbrain Applications"),
			TeamFromName:        getEnv("MAIL_TEAM_FROM_NAME", "Qbrain Team"),
			Delivery:            getEnv("MAIL_DELIVERY", "direct"),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 720), // 12 hours
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_LOGIN_EMAIL", adminEmail),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		RateLimit: RateLimitConfig{
			SubmitPerMinute: getEnvInt("RATE_SUBMIT_PER_MINUTE", 5),
			SubmitBurst:     getEnvInt("RATE_SUBMIT_BURST", 3),
			LoginPerMinute:  getEnvInt("RATE_LOGIN_PER_MINUTE", 5),
			LoginBurst:      getEnvInt("RATE_LOGIN_BURST", 5),
		},
		Site: SiteConfig{
			ContentPath: getEnv("SITE_CONTENT_PATH", ""),
		},
		Jobs: JobConfig{
			DigestCron: getEnv("DIGEST_CRON", "0 8 * * *"),
			DigestTo:   getEnv("DIGEST_TO", adminEmail),
		},
	}

	cfg.Blob.BaseURL = strings.TrimRight(getEnv("LOCAL_UPLOAD_BASE_URL", cfg.App.PublicBaseURL+"/uploads"), "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "postgres", "mongo", "sqlite":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Blob.Driver {
	case "minio", "local":
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", c.Blob.Driver)
	}

	switch c.Mail.Delivery {
	case "direct", "queue":
	default:
		return fmt.Errorf("unknown MAIL_DELIVERY %q", c.Mail.Delivery)
	}

	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Admin.PasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	return nil
}

// Warnings trả về các cấu hình thiếu nhưng không chặn khởi động; caller log sau khi logger init
func (c *Config) Warnings() []string {
	var warnings []string
	if c.IsProduction() && c.Mail.AdminEmail == "" {
		warnings = append(warnings, "ADMIN_EMAIL not set - notification emails will not be delivered")
	}
	return warnings
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// allowedOrigins trả về danh sách origin cho CORS theo môi trường.
// ALLOWED_ORIGINS (phân cách bởi dấu phẩy) override mặc định.
func allowedOrigins(env, override string) []string {
	if override != "" {
		var origins []string
		for _, o := range strings.Split(override, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return origins
	}
	if env == "production" {
		return []string{"https://qbrain.vercel.app", "https://qbrain.in"}
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
