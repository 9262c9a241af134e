package repository

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/questx-lab/chime-integration/internal/entity"
)

type MessagingEndpointRepository interface {
	Get(ctx context.Context) (*entity.MessagingEndpoint, error)
}

type messagingEndpointRepository struct {
	chime chimeiface.ChimeAPI
}

func NewMessagingEndpointRepository(chime chimeiface.ChimeAPI) *messagingEndpointRepository {
	return &messagingEndpointRepository{chime: chime}
}

func (r *messagingEndpointRepository) Get(ctx context.Context) (*entity.MessagingEndpoint, error) {
	out, err := call("GetMessagingSessionEndpoint", func() (*chime.GetMessagingSessionEndpointOutput, error) {
		return r.chime.GetMessagingSessionEndpointWithContext(ctx, &chime.GetMessagingSessionEndpointInput{})
	})
	if err != nil {
		return nil, err
	}

	if out.Endpoint == nil {
		return nil, errEmptyOutput("GetMessagingSessionEndpoint")
	}

	return &entity.MessagingEndpoint{URL: aws.StringValue(out.Endpoint.Url)}, nil
}
