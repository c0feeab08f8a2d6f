package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultCategories are the bazaraki electronics category slugs scanned
// when no CATEGORIES override is set.
var DefaultCategories = []string{
	"mobile-phones",
	"computers-laptops",
	"tablets",
	"audio-video",
	"cameras",
	"gaming",
	"smartwatches-wearables",
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	HeadlessMode        bool
	MaxPagesPerCategory int
	RequestDelayMs      int
	MaxRetries          int
	Categories          []string

	MinDealPercent float64

	ExportCSV  bool
	ExportJSON bool
	ExportHTML bool
	OutputDir  string

	ChromeBin string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "bazaraki_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		HeadlessMode:        getEnvBool("HEADLESS_MODE", true),
		MaxPagesPerCategory: getEnvInt("MAX_PAGES_PER_CATEGORY", 3),
		RequestDelayMs:      getEnvInt("REQUEST_DELAY_MS", 2000),
		MaxRetries:          getEnvInt("MAX_RETRIES", 3),
		Categories:          getEnvList("CATEGORIES", DefaultCategories),

		MinDealPercent: getEnvFloat("MIN_DEAL_PERCENT", 15.0),

		ExportCSV:  getEnvBool("EXPORT_CSV", true),
		ExportJSON: getEnvBool("EXPORT_JSON", true),
		ExportHTML: getEnvBool("EXPORT_HTML", true),
		OutputDir:  getEnv("OUTPUT_DIR", "./deals_reports"),

		ChromeBin: getEnv("CHROME_BIN", ""),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// CategoryEnabled reports whether the given category slug is part of this run.
func (c *Config) CategoryEnabled(slug string) bool {
	for _, cat := range c.Categories {
		if cat == slug {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
