package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Prefork bool   `yaml:"prefork"`
}

// LoggerConfig controls log output and rotation.
type LoggerConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// SMTPConfig holds the mail relay endpoint and credentials.
// User and Password are normally supplied via EMAIL_USER / EMAIL_PASSWORD.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// LLMConfig holds the generative-text service settings. BaseURL is
// mainly useful for pointing the client at a test double.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Logger LoggerConfig `yaml:"logger"`
	SMTP   SMTPConfig   `yaml:"smtp"`
	LLM    LLMConfig    `yaml:"llm"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "",
			Port: ":8000",
		},
		Logger: LoggerConfig{
			File:       "article-downloader.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   false,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 465,
		},
		LLM: LLMConfig{
			Model: "gpt-4",
		},
	}
}

// LoadConfig reads the YAML config file named by CONFIG_PATH (default
// "config.yaml") and applies environment overrides. A missing file is
// fine — defaults apply; an unreadable or invalid file panics.
func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaultConfig()
		applyEnvOverrides(&cfg)
		return cfg
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads and validates the config file at path.
func LoadConfigFrom(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("cannot read config %s: %v", path, err))
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(fmt.Sprintf("cannot parse config %s: %v", path, err))
	}

	if cfg.Server.Port == "" {
		panic("config: server.port must not be empty")
	}
	if cfg.SMTP.Host == "" {
		panic("config: smtp.host must not be empty")
	}
	if cfg.SMTP.Port <= 0 {
		panic("config: smtp.port must be positive")
	}
	if cfg.LLM.Model == "" {
		panic("config: llm.model must not be empty")
	}

	applyEnvOverrides(&cfg)
	return cfg
}

// applyEnvOverrides pulls secrets from the process environment. These
// always win over file values so deployments never need credentials on
// disk. Missing relay credentials are not an error here; the pipeline
// reports them per request.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
}
