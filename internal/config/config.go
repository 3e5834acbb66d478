// Package config loads imagebook_config.yaml and resolves os.environ/
// references so credentials never have to live in the file itself.
package config

// Config represents the top-level imagebook_config.yaml structure.
type Config struct {
	GeneralSettings      GeneralSettings   `yaml:"general_settings"`
	OCRSettings          OCRSettings       `yaml:"ocr_settings"`
	ImageSettings        ImageSettings     `yaml:"image_settings"`
	EnvironmentVariables map[string]string `yaml:"environment_variables,omitempty"`

	// Overflow captures any unknown top-level YAML fields so stale
	// config files keep loading; unknown fields are warned about, not fatal.
	Overflow map[string]any `yaml:",inline"`
}

// GeneralSettings holds server-wide settings.
type GeneralSettings struct {
	Port int `yaml:"port"`

	// MaxBodyBytes caps inbound JSON bodies. Defaults to 10 MB so
	// base64-encoded images fit.
	MaxBodyBytes int64 `yaml:"max_body_bytes,omitempty"`

	Overflow map[string]any `yaml:",inline"`
}

// OCRSettings configures the AWS Textract client.
// Credentials are not validated at startup; a missing key pair falls back
// to the SDK default chain and surfaces on the first provider call.
type OCRSettings struct {
	Region          string `yaml:"region,omitempty"`
	AccessKeyID     string `yaml:"aws_access_key_id,omitempty"`
	SecretAccessKey string `yaml:"aws_secret_access_key,omitempty"`

	Overflow map[string]any `yaml:",inline"`
}

// ImageSettings configures the OpenAI image-generation client.
type ImageSettings struct {
	APIKey string `yaml:"api_key,omitempty"`
	// APIBase overrides the OpenAI endpoint for compatible gateways.
	APIBase string `yaml:"api_base,omitempty"`
	Model   string `yaml:"model,omitempty"`

	Overflow map[string]any `yaml:",inline"`
}
