package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings read from the environment
type Config struct {
	Port        string
	CORSOrigins string
	LogLevel    string
	LogFormat   string

	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Resume   ResumeConfig
	OpenAI   OpenAIConfig
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "sqlite"
	URL        string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN returns the connection string for the configured driver
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	JobsTTL  time.Duration
}

// Enabled reports whether a Redis address was configured
func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type AdminConfig struct {
	Password       string
	PasswordBcrypt string
	TokenSecret    string
	TokenTTL       time.Duration
	EnforceToken   bool
}

type ResumeConfig struct {
	AWSRegion     string
	Bucket        string
	PublicBaseURL string
	URLPrefixes   []string
}

// StorageEnabled reports whether resume uploads can be stored
func (r ResumeConfig) StorageEnabled() bool { return r.Bucket != "" }

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// Load reads an optional .env file and then the process environment.
// Values already present in the environment win over the .env file.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cacheTTL, err := duration("JOBS_CACHE_TTL", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	tokenTTL, err := duration("ADMIN_TOKEN_TTL", 12*time.Hour)
	if err != nil {
		return Config{}, err
	}
	enforce, err := boolean("ADMIN_ENFORCE_TOKEN", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:        get("PORT", "8080"),
		CORSOrigins: get("CORS_ORIGINS", "*"),
		LogLevel:    get("LOG_LEVEL", "info"),
		LogFormat:   get("LOG_FORMAT", "text"),
		Database: DatabaseConfig{
			Driver:     strings.ToLower(get("DB_DRIVER", "postgres")),
			URL:        os.Getenv("DATABASE_URL"),
			Host:       get("DB_HOST", "localhost"),
			Port:       get("DB_PORT", "5432"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASS"),
			Name:       os.Getenv("DB_NAME"),
			SSLMode:    get("DB_SSLMODE", "disable"),
			SQLitePath: get("SQLITE_PATH", "vatalique.db"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASS"),
			JobsTTL:  cacheTTL,
		},
		Admin: AdminConfig{
			Password:       os.Getenv("ADMIN_PASSWORD"),
			PasswordBcrypt: os.Getenv("ADMIN_PASSWORD_BCRYPT"),
			TokenSecret:    os.Getenv("ADMIN_TOKEN_SECRET"),
			TokenTTL:       tokenTTL,
			EnforceToken:   enforce,
		},
		Resume: ResumeConfig{
			AWSRegion:     os.Getenv("AWS_REGION"),
			Bucket:        os.Getenv("AWS_BUCKET"),
			PublicBaseURL: os.Getenv("RESUME_PUBLIC_BASE_URL"),
			URLPrefixes:   list("RESUME_URL_PREFIXES"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  get("OPENAI_MODEL", "gpt-4o-mini"),
		},
	}

	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Admin.EnforceToken && cfg.Admin.TokenSecret == "" {
		return Config{}, fmt.Errorf("ADMIN_ENFORCE_TOKEN requires ADMIN_TOKEN_SECRET")
	}

	return cfg, nil
}

func get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func boolean(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func list(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
