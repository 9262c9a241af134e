package domain

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/questx-lab/chime-integration/internal/model"
	"github.com/questx-lab/chime-integration/pkg/errorx"
	"github.com/questx-lab/chime-integration/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_meetingDomain_GetSession_NewRoom(t *testing.T) {
	ctx := testutil.NewMockContext()
	fake := testutil.NewFakeChime()
	domain := newTestMeetingDomain(fake)

	resp, err := domain.GetSession(ctx, &model.GetMeetingSessionRequest{Room: "lobby"})
	require.NoError(t, err)

	meetings := fake.Meetings()
	require.Len(t, meetings, 1)
	require.Equal(t, "lobby", aws.StringValue(meetings[0].ExternalMeetingId))
	require.Equal(t, "us-west-2", aws.StringValue(meetings[0].MediaRegion))

	meeting := resp.MeetingResponse.Meeting
	require.Equal(t, aws.StringValue(meetings[0].MeetingId), meeting.MeetingID)
	require.Equal(t, "lobby", meeting.ExternalMeetingID)
	require.NotNil(t, meeting.MediaPlacement)

	attendees := fake.Attendees(meeting.MeetingID)
	require.Len(t, attendees, 1)
	require.Equal(t, aws.StringValue(attendees[0].AttendeeId), resp.AttendeeResponse.Attendee.AttendeeID)
	require.NotEmpty(t, resp.AttendeeResponse.Attendee.ExternalUserID)
	require.NotEmpty(t, resp.AttendeeResponse.Attendee.JoinToken)
}

func Test_meetingDomain_GetSession_ExistingRoom(t *testing.T) {
	ctx := testutil.NewMockContext()
	fake := testutil.NewFakeChime()
	fake.PageSize = 2
	for _, room := range []string{"a", "b", "c", "d"} {
		fake.AddMeeting(room)
	}
	existing := fake.AddMeeting("lobby")

	domain := newTestMeetingDomain(fake)
	resp, err := domain.GetSession(ctx, &model.GetMeetingSessionRequest{Room: "lobby"})
	require.NoError(t, err)

	require.Equal(t, 0, fake.Calls("CreateMeeting"))
	require.Equal(t, 3, fake.Calls("ListMeetings"))
	require.Equal(t, aws.StringValue(existing.MeetingId), resp.MeetingResponse.Meeting.MeetingID)
	require.Len(t, fake.Attendees(aws.StringValue(existing.MeetingId)), 1)
}

func Test_meetingDomain_GetSession_Twice(t *testing.T) {
	ctx := testutil.NewMockContext()
	fake := testutil.NewFakeChime()
	domain := newTestMeetingDomain(fake)

	first, err := domain.GetSession(ctx, &model.GetMeetingSessionRequest{Room: "lobby"})
	require.NoError(t, err)

	second, err := domain.GetSession(ctx, &model.GetMeetingSessionRequest{Room: "lobby"})
	require.NoError(t, err)

	require.Len(t, fake.Meetings(), 1)
	require.Equal(t, first.MeetingResponse.Meeting.MeetingID, second.MeetingResponse.Meeting.MeetingID)
	require.NotEqual(t, first.AttendeeResponse.Attendee.AttendeeID, second.AttendeeResponse.Attendee.AttendeeID)
	require.NotEqual(t, first.AttendeeResponse.Attendee.ExternalUserID, second.AttendeeResponse.Attendee.ExternalUserID)
	require.Len(t, fake.Attendees(first.MeetingResponse.Meeting.MeetingID), 2)
}

func Test_meetingDomain_GetSession_Error(t *testing.T) {
	tests := []struct {
		name      string
		req       *model.GetMeetingSessionRequest
		failOn    string
		wantCode  errorx.Code
		wantCount int
	}{
		{
			name:     "empty room",
			req:      &model.GetMeetingSessionRequest{},
			wantCode: errorx.BadRequest,
		},
		{
			name:     "list meetings fails",
			req:      &model.GetMeetingSessionRequest{Room: "lobby"},
			failOn:   "ListMeetings",
			wantCode: errorx.Upstream,
		},
		{
			name:     "create meeting fails",
			req:      &model.GetMeetingSessionRequest{Room: "lobby"},
			failOn:   "CreateMeeting",
			wantCode: errorx.Upstream,
		},
		{
			// The meeting stays behind, nothing cleans it up.
			name:      "create attendee fails",
			req:       &model.GetMeetingSessionRequest{Room: "lobby"},
			failOn:    "CreateAttendee",
			wantCode:  errorx.Upstream,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeChime()
			if tt.failOn != "" {
				fake.FailOn(tt.failOn, errors.New("service unavailable"))
			}

			_, err := newTestMeetingDomain(fake).GetSession(testutil.NewMockContext(), tt.req)
			requireErrorCode(t, err, tt.wantCode)
			require.Len(t, fake.Meetings(), tt.wantCount)
		})
	}
}
