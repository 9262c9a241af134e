package repository

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/questx-lab/chime-integration/internal/entity"
)

type ChannelMembershipRepository interface {
	// Create is not idempotent from the caller's point of view: nothing checks
	// for an existing membership first.
	Create(ctx context.Context, bearer, channelArn, memberArn string) (*entity.ChannelMembership, error)
}

type channelMembershipRepository struct {
	chime chimeiface.ChimeAPI
}

func NewChannelMembershipRepository(chime chimeiface.ChimeAPI) *channelMembershipRepository {
	return &channelMembershipRepository{chime: chime}
}

func (r *channelMembershipRepository) Create(
	ctx context.Context, bearer, channelArn, memberArn string,
) (*entity.ChannelMembership, error) {
	out, err := call("CreateChannelMembership", func() (*chime.CreateChannelMembershipOutput, error) {
		return r.chime.CreateChannelMembershipWithContext(ctx, &chime.CreateChannelMembershipInput{
			ChannelArn:  aws.String(channelArn),
			MemberArn:   aws.String(memberArn),
			Type:        aws.String(chime.ChannelMembershipTypeDefault),
			ChimeBearer: aws.String(bearer),
		})
	})
	if err != nil {
		return nil, err
	}

	membership := &entity.ChannelMembership{
		ChannelArn: aws.StringValue(out.ChannelArn),
		Member:     entity.Identity{Arn: memberArn},
	}
	if membership.ChannelArn == "" {
		membership.ChannelArn = channelArn
	}

	if out.Member != nil {
		membership.Member = entity.Identity{
			Arn:  aws.StringValue(out.Member.Arn),
			Name: aws.StringValue(out.Member.Name),
		}
	}

	return membership, nil
}
