package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultChimeEndpoint = "https://service.chime.aws.amazon.com"
	DefaultChimeRegion   = "us-east-1"
	DefaultMediaRegion   = "us-west-2"
)

func Default() Configs {
	return Configs{
		Env: "local",
		Log: LogConfigs{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 10,
			MaxAgeDays: 30,
		},
		ApiServer: ServerConfigs{
			Port:           "8080",
			RequestTimeout: Duration{30 * time.Second},
		},
		MetricServer: ServerConfigs{
			Port: "9090",
		},
		Cors: CorsConfigs{
			AllowedOrigins: []string{"*"},
		},
		Chime: ChimeConfigs{
			Region:      DefaultChimeRegion,
			Endpoint:    DefaultChimeEndpoint,
			MediaRegion: DefaultMediaRegion,
			Credentials: CredentialConfigs{
				Mode:     CredentialModeSTS,
				Duration: Duration{15 * time.Minute},
			},
		},
	}
}

// Load layers the defaults, the TOML file at path (skipped when path is empty
// or missing), a local .env file and finally the process environment.
func Load(path string) (*Configs, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Configs) Validate() error {
	if c.Chime.Region == "" {
		return errors.New("chime region is required")
	}

	if c.Chime.AppInstanceArn == "" {
		return errors.New("chime app instance arn is required")
	}

	switch c.Chime.Credentials.Mode {
	case CredentialModeSTS:
		if c.Chime.Credentials.Duration.Duration < 15*time.Minute {
			return errors.New("chime credential duration must be at least 15m")
		}
	case CredentialModeStatic:
		if c.Chime.AccessKeyID == "" || c.Chime.SecretAccessKey == "" {
			return errors.New("static credential mode requires an access key pair")
		}
	default:
		return fmt.Errorf("unknown chime credential mode %q", c.Chime.Credentials.Mode)
	}

	return nil
}

func (c *Configs) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}
