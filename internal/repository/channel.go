package repository

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/google/uuid"
	"github.com/questx-lab/chime-integration/internal/entity"
	"github.com/samber/lo"
)

// NonPersistentChannelMetadata tags channels whose messages are never stored.
const NonPersistentChannelMetadata = `{"persistence":"NON_PERSISTENT"}`

// ChannelRepository calls are made on behalf of bearer, the arn of the app
// instance user sent as the x-amz-chime-bearer header.
type ChannelRepository interface {
	// FindByName scans every channel of the app instance visible to bearer.
	// It returns ErrNotFound when no channel has the name.
	FindByName(ctx context.Context, bearer, name string) (*entity.Channel, error)
	Create(ctx context.Context, bearer, name string) (*entity.Channel, error)
}

type channelRepository struct {
	chime          chimeiface.ChimeAPI
	appInstanceArn string
}

func NewChannelRepository(chime chimeiface.ChimeAPI, appInstanceArn string) *channelRepository {
	return &channelRepository{chime: chime, appInstanceArn: appInstanceArn}
}

func (r *channelRepository) FindByName(ctx context.Context, bearer, name string) (*entity.Channel, error) {
	channels, err := r.listAll(ctx, bearer)
	if err != nil {
		return nil, err
	}

	channel, ok := lo.Find(channels, func(c *chime.ChannelSummary) bool {
		return aws.StringValue(c.Name) == name
	})
	if !ok {
		return nil, ErrNotFound
	}

	return &entity.Channel{
		Arn:      aws.StringValue(channel.ChannelArn),
		Name:     aws.StringValue(channel.Name),
		Mode:     aws.StringValue(channel.Mode),
		Privacy:  aws.StringValue(channel.Privacy),
		Metadata: aws.StringValue(channel.Metadata),
	}, nil
}

func (r *channelRepository) listAll(ctx context.Context, bearer string) ([]*chime.ChannelSummary, error) {
	var channels []*chime.ChannelSummary
	var nextToken *string
	for {
		out, err := call("ListChannels", func() (*chime.ListChannelsOutput, error) {
			return r.chime.ListChannelsWithContext(ctx, &chime.ListChannelsInput{
				AppInstanceArn: aws.String(r.appInstanceArn),
				ChimeBearer:    aws.String(bearer),
				NextToken:      nextToken,
			})
		})
		if err != nil {
			return nil, err
		}

		channels = append(channels, out.Channels...)
		if aws.StringValue(out.NextToken) == "" {
			return channels, nil
		}

		nextToken = out.NextToken
	}
}

func (r *channelRepository) Create(ctx context.Context, bearer, name string) (*entity.Channel, error) {
	out, err := call("CreateChannel", func() (*chime.CreateChannelOutput, error) {
		return r.chime.CreateChannelWithContext(ctx, &chime.CreateChannelInput{
			AppInstanceArn:     aws.String(r.appInstanceArn),
			Name:               aws.String(name),
			Mode:               aws.String(chime.ChannelModeUnrestricted),
			Privacy:            aws.String(chime.ChannelPrivacyPublic),
			Metadata:           aws.String(NonPersistentChannelMetadata),
			ClientRequestToken: aws.String(uuid.NewString()),
			ChimeBearer:        aws.String(bearer),
		})
	})
	if err != nil {
		return nil, err
	}

	if aws.StringValue(out.ChannelArn) == "" {
		return nil, errEmptyOutput("CreateChannel")
	}

	return &entity.Channel{
		Arn:      aws.StringValue(out.ChannelArn),
		Name:     name,
		Mode:     chime.ChannelModeUnrestricted,
		Privacy:  chime.ChannelPrivacyPublic,
		Metadata: NonPersistentChannelMetadata,
	}, nil
}
