package repository

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/questx-lab/chime-integration/internal/entity"
)

type AttendeeRepository interface {
	Create(ctx context.Context, meetingID, externalUserID string) (*entity.Attendee, error)
}

type attendeeRepository struct {
	chime chimeiface.ChimeAPI
}

func NewAttendeeRepository(chime chimeiface.ChimeAPI) *attendeeRepository {
	return &attendeeRepository{chime: chime}
}

func (r *attendeeRepository) Create(
	ctx context.Context, meetingID, externalUserID string,
) (*entity.Attendee, error) {
	out, err := call("CreateAttendee", func() (*chime.CreateAttendeeOutput, error) {
		return r.chime.CreateAttendeeWithContext(ctx, &chime.CreateAttendeeInput{
			MeetingId:      aws.String(meetingID),
			ExternalUserId: aws.String(externalUserID),
		})
	})
	if err != nil {
		return nil, err
	}

	if out.Attendee == nil {
		return nil, errEmptyOutput("CreateAttendee")
	}

	return &entity.Attendee{
		AttendeeID:     aws.StringValue(out.Attendee.AttendeeId),
		ExternalUserID: aws.StringValue(out.Attendee.ExternalUserId),
		JoinToken:      aws.StringValue(out.Attendee.JoinToken),
	}, nil
}
