package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/questx-lab/chime-integration/config"
	"github.com/questx-lab/chime-integration/internal/client"
	"github.com/questx-lab/chime-integration/internal/domain"
	"github.com/questx-lab/chime-integration/internal/repository"
	"github.com/questx-lab/chime-integration/pkg/awsutil"
	"github.com/questx-lab/chime-integration/pkg/logger"
	"github.com/questx-lab/chime-integration/pkg/router"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App
	ctx context.Context

	meetingsAPI  chimeiface.ChimeAPI
	messagingAPI chimeiface.ChimeAPI
	stsAPI       stsiface.STSAPI

	credentialIssuer client.CredentialIssuer

	meetingRepo           repository.MeetingRepository
	attendeeRepo          repository.AttendeeRepository
	appInstanceUserRepo   repository.AppInstanceUserRepository
	messagingEndpointRepo repository.MessagingEndpointRepository
	channelRepo           repository.ChannelRepository
	channelMembershipRepo repository.ChannelMembershipRepository
	messageRepo           repository.MessageRepository

	meetingDomain   domain.MeetingDomain
	messagingDomain domain.MessagingDomain
	healthDomain    domain.HealthDomain

	router *router.Router
}

func (s *srv) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(context.Background(), *cfg)
	return nil
}

func (s *srv) loadLogger() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(logger.Options{
		Level:      cfg.Log.Level,
		JSON:       cfg.IsProduction(),
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}))
}

func (s *srv) loadChime() error {
	cfg := xcontext.Configs(s.ctx).Chime

	sess, err := awsutil.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("cannot create aws session: %w", err)
	}

	s.meetingsAPI = awsutil.NewMeetingsAPI(sess, cfg)
	s.messagingAPI = awsutil.NewMessagingAPI(sess, cfg)
	s.stsAPI = awsutil.NewSTSAPI(sess)
	return nil
}

func (s *srv) loadCredentialIssuer() error {
	var err error
	s.credentialIssuer, err = client.NewCredentialIssuer(xcontext.Configs(s.ctx).Chime, s.stsAPI)
	return err
}

func (s *srv) loadRepos() {
	cfg := xcontext.Configs(s.ctx).Chime
	s.meetingRepo = repository.NewMeetingRepository(s.meetingsAPI, cfg.MediaRegion)
	s.attendeeRepo = repository.NewAttendeeRepository(s.meetingsAPI)
	s.appInstanceUserRepo = repository.NewAppInstanceUserRepository(s.messagingAPI, cfg.AppInstanceArn)
	s.messagingEndpointRepo = repository.NewMessagingEndpointRepository(s.messagingAPI)
	s.channelRepo = repository.NewChannelRepository(s.messagingAPI, cfg.AppInstanceArn)
	s.channelMembershipRepo = repository.NewChannelMembershipRepository(s.messagingAPI)
	s.messageRepo = repository.NewMessageRepository(s.messagingAPI)
}

func (s *srv) loadDomains() {
	s.meetingDomain = domain.NewMeetingDomain(s.meetingRepo, s.attendeeRepo)
	s.messagingDomain = domain.NewMessagingDomain(
		s.appInstanceUserRepo,
		s.messagingEndpointRepo,
		s.channelRepo,
		s.channelMembershipRepo,
		s.messageRepo,
		s.credentialIssuer,
	)
	s.healthDomain = domain.NewHealthDomain()
}
