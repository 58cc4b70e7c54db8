package config

import (
	"os"
	"strconv"
	"strings"
)

// SMTPConfig holds mail relay credentials
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Config is the process configuration, read from the environment
type Config struct {
	Port              string
	Env               string
	MongoURI          string
	DBName            string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	NotifyEmail       string
	CORSOrigins       []string
	SMTP              SMTPConfig
}

// Load reads the configuration. Call godotenv.Load before this to pick up a .env file.
func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "production"),
		MongoURI:          os.Getenv("MONGO_URI"),
		DBName:            getEnv("DB_NAME", "builditdreamz"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "mail.smtp2go.com"),
			Port: getEnvInt("SMTP_PORT", 2525),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: os.Getenv("FROM_EMAIL"),
		},
	}

	// Check both MONGO_URI and MONGODB_URI
	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGODB_URI")
	}
	if cfg.MongoURI == "" && cfg.IsDevelopment() {
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	// Use FROM_EMAIL as sender, fall back to SMTP_USER
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	cfg.NotifyEmail = getEnv("NOTIFY_EMAIL", cfg.AdminEmail)
	cfg.CORSOrigins = corsOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	return cfg
}

// IsDevelopment reports whether ENV names a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

func corsOrigins(env string) []string {
	origins := []string{
		"http://localhost:3000",
		"https://builditdreamz.com",
		"https://www.builditdreamz.com",
	}
	for _, origin := range strings.Split(env, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}
