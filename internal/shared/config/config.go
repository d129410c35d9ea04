package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	ModeHTTP = "http"
	ModeFCGI = "fcgi"
	ModeCGI  = "cgi"
)

// Config holds application configuration.
type Config struct {
	Port              string `mapstructure:"port"`
	Env               string `mapstructure:"env"`
	Mode              string `mapstructure:"serve_mode"`
	AppTitle          string `mapstructure:"app_title"`
	StylesheetURL     string `mapstructure:"stylesheet_url"`
	EnforceValidation bool   `mapstructure:"enforce_validation"`
	MaxBodyBytes      int64  `mapstructure:"max_body_bytes"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	v := viper.New()
	setDefaults(v)

	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(v, ".env", "cmd/.env")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("config unmarshal failed, using defaults: %v", err)
		cfg = Config{}
		cfg.Port = v.GetString("port")
	}
	return normalize(cfg)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("serve_mode", ModeHTTP)
	v.SetDefault("app_title", "Web CGI Wizard")
	v.SetDefault("stylesheet_url", "style.css")
	v.SetDefault("enforce_validation", true)
	v.SetDefault("max_body_bytes", 64<<10)
}

// loadEnvFiles merges simple KEY=VALUE files into v if they exist.
// Errors are ignored; real environment variables still take precedence.
func loadEnvFiles(v *viper.Viper, paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			log.Printf("config: skipping %s: %v", path, err)
		}
	}
}

func normalize(cfg Config) Config {
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.Mode = normalizeMode(cfg.Mode)
	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8080"
	}
	if strings.TrimSpace(cfg.AppTitle) == "" {
		cfg.AppTitle = "Web CGI Wizard"
	}
	if strings.TrimSpace(cfg.StylesheetURL) == "" {
		cfg.StylesheetURL = "style.css"
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 64 << 10
	}
	return cfg
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fcgi", "fastcgi":
		return ModeFCGI
	case "cgi":
		return ModeCGI
	default:
		return ModeHTTP
	}
}
