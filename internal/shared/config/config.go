package config

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Resume source kinds.
const (
	SourceLocal = "local"
	SourceHTTP  = "http"
	SourceS3    = "s3"
)

// Config holds application configuration.
type Config struct {
	Port               string   `env:"PORT" env-default:"8080"`
	Env                string   `env:"ENV" env-default:"dev"`
	CORSAllowOrigin    []string `env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"*"`
	ResumeSource       string   `env:"RESUME_SOURCE" env-default:"local"`
	ResumeKey          string   `env:"RESUME_KEY" env-default:"resume.json"`
	LocalDataDir       string   `env:"LOCAL_DATA_DIR" env-default:"./data"`
	ResumeURL          string   `env:"RESUME_URL"`
	AWSRegion          string   `env:"AWS_REGION"`
	S3Bucket           string   `env:"S3_BUCKET"`
	S3Prefix           string   `env:"S3_PREFIX"`
	ImagesDir          string   `env:"IMAGES_DIR" env-default:"./images"`
	AccordionExclusive bool     `env:"ACCORDION_EXCLUSIVE" env-default:"true"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "read env")
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize canonicalizes enumerated values and trims list entries.
func (c *Config) Normalize() {
	c.Env = normalizeEnv(c.Env)
	c.ResumeSource = normalizeSourceType(c.ResumeSource)
	c.CORSAllowOrigin = splitAndTrim(strings.Join(c.CORSAllowOrigin, ","))
	if strings.TrimSpace(c.ResumeKey) == "" {
		c.ResumeKey = "resume.json"
	}
}

// Validate reports settings that make the selected source unusable.
func (c Config) Validate() error {
	switch c.ResumeSource {
	case SourceHTTP:
		if strings.TrimSpace(c.ResumeURL) == "" {
			return errors.New("RESUME_URL is required when RESUME_SOURCE=http")
		}
	case SourceS3:
		if strings.TrimSpace(c.S3Bucket) == "" {
			return errors.New("S3_BUCKET is required when RESUME_SOURCE=s3")
		}
	}
	return nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeSourceType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return SourceS3
	case "http", "https", "url":
		return SourceHTTP
	default:
		return SourceLocal
	}
}
