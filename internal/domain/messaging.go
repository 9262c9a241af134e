package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/chime-integration/internal/client"
	"github.com/questx-lab/chime-integration/internal/entity"
	"github.com/questx-lab/chime-integration/internal/model"
	"github.com/questx-lab/chime-integration/internal/repository"
	"github.com/questx-lab/chime-integration/pkg/errorx"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
)

type MessagingDomain interface {
	GetSession(context.Context, *model.GetMessagingSessionRequest) (*model.GetMessagingSessionResponse, error)
	SendMessage(context.Context, *model.SendMessageRequest) (*model.SendMessageResponse, error)
}

type messagingDomain struct {
	appInstanceUserRepo   repository.AppInstanceUserRepository
	messagingEndpointRepo repository.MessagingEndpointRepository
	channelRepo           repository.ChannelRepository
	channelMembershipRepo repository.ChannelMembershipRepository
	messageRepo           repository.MessageRepository
	credentialIssuer      client.CredentialIssuer
}

func NewMessagingDomain(
	appInstanceUserRepo repository.AppInstanceUserRepository,
	messagingEndpointRepo repository.MessagingEndpointRepository,
	channelRepo repository.ChannelRepository,
	channelMembershipRepo repository.ChannelMembershipRepository,
	messageRepo repository.MessageRepository,
	credentialIssuer client.CredentialIssuer,
) *messagingDomain {
	return &messagingDomain{
		appInstanceUserRepo:   appInstanceUserRepo,
		messagingEndpointRepo: messagingEndpointRepo,
		channelRepo:           channelRepo,
		channelMembershipRepo: channelMembershipRepo,
		messageRepo:           messageRepo,
		credentialIssuer:      credentialIssuer,
	}
}

// GetSession creates a new messaging identity, joins it to the meeting's
// channel and returns what the client needs to connect to the messaging
// endpoint on its own. The channel is created on first use.
func (d *messagingDomain) GetSession(
	ctx context.Context, req *model.GetMessagingSessionRequest,
) (*model.GetMessagingSessionResponse, error) {
	if req.MeetingID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty meeting id")
	}

	user, err := d.appInstanceUserRepo.Create(ctx, uuid.NewString())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create app instance user: %v", err)
		return nil, errorx.New(errorx.Upstream, "Cannot create messaging user")
	}

	endpoint, err := d.messagingEndpointRepo.Get(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get messaging endpoint: %v", err)
		return nil, errorx.New(errorx.Upstream, "Cannot get messaging endpoint")
	}

	channel, err := d.resolveChannel(ctx, user.Arn, req.MeetingID)
	if err != nil {
		return nil, err
	}

	membership, err := d.channelMembershipRepo.Create(ctx, user.Arn, channel.Arn, user.Arn)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot join %s to channel %s: %v", user.Arn, channel.Arn, err)
		return nil, errorx.New(errorx.Upstream, "Cannot create channel membership")
	}

	creds, err := d.credentialIssuer.Issue(ctx, user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot issue credentials for %s: %v", user.Arn, err)
		return nil, errorx.New(errorx.Upstream, "Cannot issue messaging credentials")
	}

	return &model.GetMessagingSessionResponse{
		MsgChannelArn:                channel.Arn,
		MsgChannelMembershipResponse: convertChannelMembership(membership),
		EndpointResponse:             model.EndpointResponse{Endpoint: model.MessagingEndpoint{URL: endpoint.URL}},
		Region:                       xcontext.Configs(ctx).Chime.Region,
		AccessKeyID:                  creds.AccessKeyID,
		SecretAccessKey:              creds.SecretAccessKey,
		SessionToken:                 creds.SessionToken,
		Expiration:                   convertExpiration(creds.Expiration),
	}, nil
}

func (d *messagingDomain) resolveChannel(ctx context.Context, bearer, name string) (*entity.Channel, error) {
	channel, err := d.channelRepo.FindByName(ctx, bearer, name)
	if err == nil {
		return channel, nil
	}

	if !errors.Is(err, repository.ErrNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot find channel %s: %v", name, err)
		return nil, errorx.New(errorx.Upstream, "Cannot list channels")
	}

	channel, err = d.channelRepo.Create(ctx, bearer, name)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create channel %s: %v", name, err)
		return nil, errorx.New(errorx.Upstream, "Cannot create channel")
	}

	xcontext.Logger(ctx).Infof("Created channel %s for meeting %s", channel.Arn, name)
	return channel, nil
}

// SendMessage posts content to the membership's channel as its member.
func (d *messagingDomain) SendMessage(
	ctx context.Context, req *model.SendMessageRequest,
) (*model.SendMessageResponse, error) {
	membership := req.ChannelMembership
	if membership.ChannelArn == "" || membership.Member.Arn == "" {
		return nil, errorx.New(errorx.BadRequest, "Require channel membership")
	}

	if req.Content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty content")
	}

	msg, err := d.messageRepo.Send(ctx, membership.Member.Arn, membership.ChannelArn, req.Content)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send message to channel %s: %v", membership.ChannelArn, err)
		return nil, errorx.New(errorx.Upstream, "Cannot send message")
	}

	return &model.SendMessageResponse{
		Response:         convertMessage(msg, membership.ChannelArn),
		CreatedTimestamp: time.Now().UTC(),
		Sender:           membership.Member,
	}, nil
}
