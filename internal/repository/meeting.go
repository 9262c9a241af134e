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

type MeetingRepository interface {
	// FindByExternalID scans every meeting of the account. It returns
	// ErrNotFound when no meeting carries the external id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Meeting, error)
	Create(ctx context.Context, externalID string) (*entity.Meeting, error)
}

type meetingRepository struct {
	chime       chimeiface.ChimeAPI
	mediaRegion string
}

func NewMeetingRepository(chime chimeiface.ChimeAPI, mediaRegion string) *meetingRepository {
	return &meetingRepository{chime: chime, mediaRegion: mediaRegion}
}

func (r *meetingRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Meeting, error) {
	meetings, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}

	meeting, ok := lo.Find(meetings, func(m *chime.Meeting) bool {
		return aws.StringValue(m.ExternalMeetingId) == externalID
	})
	if !ok {
		return nil, ErrNotFound
	}

	return convertMeeting(meeting), nil
}

func (r *meetingRepository) listAll(ctx context.Context) ([]*chime.Meeting, error) {
	var meetings []*chime.Meeting
	var nextToken *string
	for {
		out, err := call("ListMeetings", func() (*chime.ListMeetingsOutput, error) {
			return r.chime.ListMeetingsWithContext(ctx, &chime.ListMeetingsInput{NextToken: nextToken})
		})
		if err != nil {
			return nil, err
		}

		meetings = append(meetings, out.Meetings...)
		if aws.StringValue(out.NextToken) == "" {
			return meetings, nil
		}

		nextToken = out.NextToken
	}
}

func (r *meetingRepository) Create(ctx context.Context, externalID string) (*entity.Meeting, error) {
	out, err := call("CreateMeeting", func() (*chime.CreateMeetingOutput, error) {
		return r.chime.CreateMeetingWithContext(ctx, &chime.CreateMeetingInput{
			ClientRequestToken: aws.String(uuid.NewString()),
			MediaRegion:        aws.String(r.mediaRegion),
			ExternalMeetingId:  aws.String(externalID),
		})
	})
	if err != nil {
		return nil, err
	}

	if out.Meeting == nil {
		return nil, errEmptyOutput("CreateMeeting")
	}

	return convertMeeting(out.Meeting), nil
}

func convertMeeting(m *chime.Meeting) *entity.Meeting {
	meeting := &entity.Meeting{
		MeetingID:         aws.StringValue(m.MeetingId),
		ExternalMeetingID: aws.StringValue(m.ExternalMeetingId),
		MediaRegion:       aws.StringValue(m.MediaRegion),
	}

	if p := m.MediaPlacement; p != nil {
		meeting.MediaPlacement = entity.MediaPlacement{
			AudioHostURL:      aws.StringValue(p.AudioHostUrl),
			AudioFallbackURL:  aws.StringValue(p.AudioFallbackUrl),
			ScreenDataURL:     aws.StringValue(p.ScreenDataUrl),
			ScreenSharingURL:  aws.StringValue(p.ScreenSharingUrl),
			ScreenViewingURL:  aws.StringValue(p.ScreenViewingUrl),
			SignalingURL:      aws.StringValue(p.SignalingUrl),
			TurnControlURL:    aws.StringValue(p.TurnControlUrl),
			EventIngestionURL: aws.StringValue(p.EventIngestionUrl),
		}
	}

	return meeting
}
