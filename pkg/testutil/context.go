package testutil

import (
	"context"

	"github.com/questx-lab/chime-integration/config"
	"github.com/questx-lab/chime-integration/pkg/logger"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
)

const (
	AppInstanceArn = "arn:aws:chime:us-east-1:111122223333:app-instance/test"
	AccountID      = "111122223333"
)

func MockConfigs() config.Configs {
	cfg := config.Default()
	cfg.Chime.AppInstanceArn = AppInstanceArn
	cfg.Chime.AccessKeyID = "AKIATEST"
	cfg.Chime.SecretAccessKey = "secret"
	return cfg
}

func NewMockContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	return ctx
}
