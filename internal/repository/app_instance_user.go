package repository

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/google/uuid"
	"github.com/questx-lab/chime-integration/internal/entity"
)

type AppInstanceUserRepository interface {
	// Create registers userID as both the identifier and display name.
	Create(ctx context.Context, userID string) (*entity.AppInstanceUser, error)
}

type appInstanceUserRepository struct {
	chime          chimeiface.ChimeAPI
	appInstanceArn string
}

func NewAppInstanceUserRepository(chime chimeiface.ChimeAPI, appInstanceArn string) *appInstanceUserRepository {
	return &appInstanceUserRepository{chime: chime, appInstanceArn: appInstanceArn}
}

func (r *appInstanceUserRepository) Create(ctx context.Context, userID string) (*entity.AppInstanceUser, error) {
	out, err := call("CreateAppInstanceUser", func() (*chime.CreateAppInstanceUserOutput, error) {
		return r.chime.CreateAppInstanceUserWithContext(ctx, &chime.CreateAppInstanceUserInput{
			AppInstanceArn:     aws.String(r.appInstanceArn),
			AppInstanceUserId:  aws.String(userID),
			Name:               aws.String(userID),
			ClientRequestToken: aws.String(uuid.NewString()),
		})
	})
	if err != nil {
		return nil, err
	}

	if aws.StringValue(out.AppInstanceUserArn) == "" {
		return nil, errEmptyOutput("CreateAppInstanceUser")
	}

	return &entity.AppInstanceUser{
		Arn:    aws.StringValue(out.AppInstanceUserArn),
		UserID: userID,
		Name:   userID,
	}, nil
}
