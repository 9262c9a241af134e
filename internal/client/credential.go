package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/questx-lab/chime-integration/config"
	"github.com/questx-lab/chime-integration/internal/entity"
)

const maxRoleSessionNameLength = 64

var invalidSessionNameChars = regexp.MustCompile(`[^\w+=,.@-]`)

// CredentialIssuer hands out AWS credentials that a messaging client uses to
// open its own connection to the messaging endpoint.
type CredentialIssuer interface {
	Issue(ctx context.Context, user *entity.AppInstanceUser) (*entity.Credentials, error)
}

func NewCredentialIssuer(cfg config.ChimeConfigs, api stsiface.STSAPI) (CredentialIssuer, error) {
	switch cfg.Credentials.Mode {
	case config.CredentialModeStatic:
		return NewStaticCredentialIssuer(cfg.AccessKeyID, cfg.SecretAccessKey), nil
	case config.CredentialModeSTS, "":
		return NewSTSCredentialIssuer(api, cfg.Credentials.RoleArn, cfg.Credentials.Duration.Duration), nil
	default:
		return nil, fmt.Errorf("unknown credential mode %q", cfg.Credentials.Mode)
	}
}

type staticCredentialIssuer struct {
	accessKeyID     string
	secretAccessKey string
}

// NewStaticCredentialIssuer returns the server's own key pair to every caller.
func NewStaticCredentialIssuer(accessKeyID, secretAccessKey string) *staticCredentialIssuer {
	return &staticCredentialIssuer{accessKeyID: accessKeyID, secretAccessKey: secretAccessKey}
}

func (i *staticCredentialIssuer) Issue(context.Context, *entity.AppInstanceUser) (*entity.Credentials, error) {
	if i.accessKeyID == "" || i.secretAccessKey == "" {
		return nil, errors.New("static credentials are not configured")
	}

	return &entity.Credentials{
		AccessKeyID:     i.accessKeyID,
		SecretAccessKey: i.secretAccessKey,
	}, nil
}

type stsCredentialIssuer struct {
	sts      stsiface.STSAPI
	roleArn  string
	duration time.Duration
}

// NewSTSCredentialIssuer issues temporary credentials. With a role arn the
// credentials are scoped down to the given app instance user, otherwise a
// plain session token of the server identity is returned.
func NewSTSCredentialIssuer(api stsiface.STSAPI, roleArn string, duration time.Duration) *stsCredentialIssuer {
	return &stsCredentialIssuer{sts: api, roleArn: roleArn, duration: duration}
}

func (i *stsCredentialIssuer) Issue(
	ctx context.Context, user *entity.AppInstanceUser,
) (*entity.Credentials, error) {
	if i.roleArn == "" {
		out, err := i.sts.GetSessionTokenWithContext(ctx, &sts.GetSessionTokenInput{
			DurationSeconds: aws.Int64(int64(i.duration.Seconds())),
		})
		if err != nil {
			return nil, fmt.Errorf("sts GetSessionToken: %w", err)
		}

		return convertCredentials(out.Credentials)
	}

	policy, err := SessionPolicy(user.Arn)
	if err != nil {
		return nil, err
	}

	out, err := i.sts.AssumeRoleWithContext(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(i.roleArn),
		RoleSessionName: aws.String(RoleSessionName(user.UserID)),
		DurationSeconds: aws.Int64(int64(i.duration.Seconds())),
		Policy:          aws.String(policy),
	})
	if err != nil {
		return nil, fmt.Errorf("sts AssumeRole: %w", err)
	}

	return convertCredentials(out.Credentials)
}

func convertCredentials(c *sts.Credentials) (*entity.Credentials, error) {
	if c == nil {
		return nil, errors.New("sts returned no credentials")
	}

	return &entity.Credentials{
		AccessKeyID:     aws.StringValue(c.AccessKeyId),
		SecretAccessKey: aws.StringValue(c.SecretAccessKey),
		SessionToken:    aws.StringValue(c.SessionToken),
		Expiration:      aws.TimeValue(c.Expiration),
	}, nil
}

// RoleSessionName keeps to the character set and length STS accepts.
func RoleSessionName(userID string) string {
	name := "chime-" + invalidSessionNameChars.ReplaceAllString(userID, "-")
	if len(name) > maxRoleSessionNameLength {
		name = name[:maxRoleSessionNameLength]
	}

	return name
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource []string `json:"Resource"`
}

// SessionPolicy limits assumed-role credentials to connecting as one app
// instance user.
func SessionPolicy(userArn string) (string, error) {
	b, err := json.Marshal(policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{
			{
				Effect:   "Allow",
				Action:   []string{"chime:Connect"},
				Resource: []string{userArn},
			},
			{
				Effect:   "Allow",
				Action:   []string{"chime:GetMessagingSessionEndpoint"},
				Resource: []string{"*"},
			},
		},
	})
	if err != nil {
		return "", err
	}

	return string(b), nil
}
