package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/questx-lab/chime-integration/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_meetingRepository_FindByExternalID(t *testing.T) {
	api := &mocks.ChimeAPI{}
	api.On("ListMeetingsWithContext", mock.Anything, &chime.ListMeetingsInput{}).
		Return(&chime.ListMeetingsOutput{
			Meetings: []*chime.Meeting{
				{MeetingId: aws.String("m-1"), ExternalMeetingId: aws.String("kitchen")},
			},
			NextToken: aws.String("page-2"),
		}, nil)
	api.On("ListMeetingsWithContext", mock.Anything, &chime.ListMeetingsInput{NextToken: aws.String("page-2")}).
		Return(&chime.ListMeetingsOutput{
			Meetings: []*chime.Meeting{
				{
					MeetingId:         aws.String("m-2"),
					ExternalMeetingId: aws.String("lobby"),
					MediaPlacement:    &chime.MediaPlacement{SignalingUrl: aws.String("wss://signal")},
				},
			},
		}, nil)

	repo := NewMeetingRepository(api, "us-west-2")

	meeting, err := repo.FindByExternalID(context.Background(), "lobby")
	require.NoError(t, err)
	require.Equal(t, "m-2", meeting.MeetingID)
	require.Equal(t, "wss://signal", meeting.MediaPlacement.SignalingURL)

	_, err = repo.FindByExternalID(context.Background(), "garden")
	require.ErrorIs(t, err, ErrNotFound)
}

func Test_meetingRepository_FindByExternalID_Error(t *testing.T) {
	api := &mocks.ChimeAPI{}
	api.On("ListMeetingsWithContext", mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled"))

	_, err := NewMeetingRepository(api, "us-west-2").FindByExternalID(context.Background(), "lobby")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.ErrorContains(t, err, "chime ListMeetings: throttled")
}

func Test_meetingRepository_Create(t *testing.T) {
	api := &mocks.ChimeAPI{}
	api.On("CreateMeetingWithContext", mock.Anything, mock.MatchedBy(func(in *chime.CreateMeetingInput) bool {
		return aws.StringValue(in.ExternalMeetingId) == "lobby" &&
			aws.StringValue(in.MediaRegion) == "us-west-2" &&
			aws.StringValue(in.ClientRequestToken) != ""
	})).Return(&chime.CreateMeetingOutput{
		Meeting: &chime.Meeting{
			MeetingId:         aws.String("m-1"),
			ExternalMeetingId: aws.String("lobby"),
			MediaRegion:       aws.String("us-west-2"),
		},
	}, nil)

	meeting, err := NewMeetingRepository(api, "us-west-2").Create(context.Background(), "lobby")
	require.NoError(t, err)
	require.Equal(t, "m-1", meeting.MeetingID)
	require.Equal(t, "lobby", meeting.ExternalMeetingID)
	api.AssertExpectations(t)
}

func Test_attendeeRepository_Create(t *testing.T) {
	api := &mocks.ChimeAPI{}
	api.On("CreateAttendeeWithContext", mock.Anything, &chime.CreateAttendeeInput{
		MeetingId:      aws.String("m-1"),
		ExternalUserId: aws.String("u-1"),
	}).Return(&chime.CreateAttendeeOutput{
		Attendee: &chime.Attendee{
			AttendeeId:     aws.String("a-1"),
			ExternalUserId: aws.String("u-1"),
			JoinToken:      aws.String("token"),
		},
	}, nil)
	api.On("CreateAttendeeWithContext", mock.Anything, mock.Anything).
		Return(&chime.CreateAttendeeOutput{}, nil)

	repo := NewAttendeeRepository(api)

	attendee, err := repo.Create(context.Background(), "m-1", "u-1")
	require.NoError(t, err)
	require.Equal(t, "a-1", attendee.AttendeeID)
	require.Equal(t, "token", attendee.JoinToken)

	_, err = repo.Create(context.Background(), "m-2", "u-2")
	require.ErrorContains(t, err, "empty output")
}
