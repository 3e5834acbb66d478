package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxBodyBytes admits base64-encoded images in JSON bodies.
const DefaultMaxBodyBytes = 10 << 20 // 10 MB

// Load reads an imagebook_config.yaml file and returns a Config with all
// environment variable references resolved. A missing file is not an
// error: the relay originally ran on environment variables alone, so the
// loader falls back to env-sourced defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := &Config{}
		setDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnvironmentVariables(&cfg)
	resolveEnvVars(&cfg)
	setDefaults(&cfg)
	Validate(&cfg)

	return &cfg, nil
}

// applyEnvironmentVariables sets OS env vars from the config's
// environment_variables section before any other resolution happens.
func applyEnvironmentVariables(cfg *Config) {
	for k, v := range cfg.EnvironmentVariables {
		os.Setenv(k, ResolveEnvVar(v))
	}
}

func resolveEnvVars(cfg *Config) {
	cfg.OCRSettings.Region = ResolveEnvVar(cfg.OCRSettings.Region)
	cfg.OCRSettings.AccessKeyID = ResolveEnvVar(cfg.OCRSettings.AccessKeyID)
	cfg.OCRSettings.SecretAccessKey = ResolveEnvVar(cfg.OCRSettings.SecretAccessKey)
	cfg.ImageSettings.APIKey = ResolveEnvVar(cfg.ImageSettings.APIKey)
	cfg.ImageSettings.APIBase = ResolveEnvVar(cfg.ImageSettings.APIBase)
}

// setDefaults fills anything the file left empty. Credentials default to
// the conventional environment variables; presence is deliberately not
// checked here — a missing credential fails on first provider use.
func setDefaults(cfg *Config) {
	if cfg.GeneralSettings.Port == 0 {
		cfg.GeneralSettings.Port = 4000
	}
	if cfg.GeneralSettings.MaxBodyBytes == 0 {
		cfg.GeneralSettings.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.OCRSettings.Region == "" {
		cfg.OCRSettings.Region = os.Getenv("AWS_REGION")
	}
	if cfg.OCRSettings.AccessKeyID == "" {
		cfg.OCRSettings.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	if cfg.OCRSettings.SecretAccessKey == "" {
		cfg.OCRSettings.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	if cfg.ImageSettings.APIKey == "" {
		cfg.ImageSettings.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.ImageSettings.Model == "" {
		cfg.ImageSettings.Model = "dall-e-3"
	}
}
