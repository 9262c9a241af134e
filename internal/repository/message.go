package repository

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/google/uuid"
	"github.com/questx-lab/chime-integration/internal/entity"
)

type MessageRepository interface {
	// Send posts a standard, non-persistent message to the channel as bearer.
	Send(ctx context.Context, bearer, channelArn, content string) (*entity.Message, error)
}

type messageRepository struct {
	chime chimeiface.ChimeAPI
}

func NewMessageRepository(chime chimeiface.ChimeAPI) *messageRepository {
	return &messageRepository{chime: chime}
}

func (r *messageRepository) Send(
	ctx context.Context, bearer, channelArn, content string,
) (*entity.Message, error) {
	out, err := call("SendChannelMessage", func() (*chime.SendChannelMessageOutput, error) {
		return r.chime.SendChannelMessageWithContext(ctx, &chime.SendChannelMessageInput{
			ChannelArn:         aws.String(channelArn),
			Content:            aws.String(content),
			Persistence:        aws.String(chime.ChannelMessagePersistenceTypeNonPersistent),
			Type:               aws.String(chime.ChannelMessageTypeStandard),
			ClientRequestToken: aws.String(uuid.NewString()),
			ChimeBearer:        aws.String(bearer),
		})
	})
	if err != nil {
		return nil, err
	}

	return &entity.Message{
		ChannelArn: aws.StringValue(out.ChannelArn),
		MessageID:  aws.StringValue(out.MessageId),
	}, nil
}
