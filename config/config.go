package config

import (
	"fmt"
	"time"
)

// Environment names follow the struct path, e.g. CHIME_APP_INSTANCE_ARN or
// API_SERVER_PORT. The AWS key pair also accepts the standard AWS_* names.
type Configs struct {
	Env string `toml:"env"`

	Log          LogConfigs    `toml:"log"`
	ApiServer    ServerConfigs `toml:"api_server" split_words:"true"`
	MetricServer ServerConfigs `toml:"metric_server" split_words:"true"`
	Cors         CorsConfigs   `toml:"cors"`
	Chime        ChimeConfigs  `toml:"chime"`
}

type LogConfigs struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" split_words:"true"`
	MaxBackups int    `toml:"max_backups" split_words:"true"`
	MaxAgeDays int    `toml:"max_age_days" split_words:"true"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	// RequestTimeout bounds the remote calls of one request. Zero disables it.
	RequestTimeout Duration `toml:"request_timeout" split_words:"true"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type CorsConfigs struct {
	AllowedOrigins []string `toml:"allowed_origins" split_words:"true"`
}

type ChimeConfigs struct {
	Region   string `toml:"region"`
	Endpoint string `toml:"endpoint"`

	// MessagingEndpoint overrides the SDK resolved endpoint for the identity
	// and messaging operations. Empty keeps the SDK default.
	MessagingEndpoint string `toml:"messaging_endpoint" split_words:"true"`

	MediaRegion    string `toml:"media_region" split_words:"true"`
	AppInstanceArn string `toml:"app_instance_arn" split_words:"true"`

	AccessKeyID     string `toml:"access_key_id" envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `toml:"secret_access_key" envconfig:"AWS_SECRET_ACCESS_KEY"`

	Credentials CredentialConfigs `toml:"credentials"`
}

const (
	CredentialModeSTS    = "sts"
	CredentialModeStatic = "static"
)

// CredentialConfigs controls what is handed to messaging clients so they can
// open their own websocket to the messaging endpoint.
type CredentialConfigs struct {
	Mode     string   `toml:"mode"`
	RoleArn  string   `toml:"role_arn" split_words:"true"`
	Duration Duration `toml:"duration"`
}

// Duration accepts "30s"-style strings from both TOML and the environment.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = v
	return nil
}
