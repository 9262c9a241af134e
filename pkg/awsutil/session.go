package awsutil

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/questx-lab/chime-integration/config"
)

// NewSession uses the configured key pair when present and falls back to the
// SDK default credential chain otherwise.
func NewSession(cfg config.ChimeConfigs) (*session.Session, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	return session.NewSession(awsCfg)
}

// NewMeetingsAPI returns a Chime client pinned to the meetings endpoint.
func NewMeetingsAPI(sess *session.Session, cfg config.ChimeConfigs) chimeiface.ChimeAPI {
	return chime.New(sess, endpointConfig(cfg.Endpoint))
}

// NewMessagingAPI returns a Chime client for the identity and messaging
// operations, which the SDK routes through host-prefixed endpoints.
func NewMessagingAPI(sess *session.Session, cfg config.ChimeConfigs) chimeiface.ChimeAPI {
	return chime.New(sess, endpointConfig(cfg.MessagingEndpoint))
}

func NewSTSAPI(sess *session.Session) stsiface.STSAPI {
	return sts.New(sess)
}

func endpointConfig(endpoint string) *aws.Config {
	cfg := aws.NewConfig()
	if endpoint != "" {
		cfg = cfg.WithEndpoint(endpoint)
	}

	return cfg
}
