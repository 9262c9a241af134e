package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/questx-lab/chime-integration/internal/model"
	"github.com/questx-lab/chime-integration/internal/repository"
	"github.com/questx-lab/chime-integration/pkg/errorx"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
)

type MeetingDomain interface {
	GetSession(context.Context, *model.GetMeetingSessionRequest) (*model.GetMeetingSessionResponse, error)
}

type meetingDomain struct {
	meetingRepo  repository.MeetingRepository
	attendeeRepo repository.AttendeeRepository
}

func NewMeetingDomain(
	meetingRepo repository.MeetingRepository,
	attendeeRepo repository.AttendeeRepository,
) *meetingDomain {
	return &meetingDomain{
		meetingRepo:  meetingRepo,
		attendeeRepo: attendeeRepo,
	}
}

// GetSession joins the room's meeting, creating it on first use, and always
// provisions a new attendee.
func (d *meetingDomain) GetSession(
	ctx context.Context, req *model.GetMeetingSessionRequest,
) (*model.GetMeetingSessionResponse, error) {
	if req.Room == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty room")
	}

	meeting, err := d.meetingRepo.FindByExternalID(ctx, req.Room)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot find meeting of room %s: %v", req.Room, err)
			return nil, errorx.New(errorx.Upstream, "Cannot list meetings")
		}

		meeting, err = d.meetingRepo.Create(ctx, req.Room)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create meeting of room %s: %v", req.Room, err)
			return nil, errorx.New(errorx.Upstream, "Cannot create meeting")
		}

		xcontext.Logger(ctx).Infof("Created meeting %s for room %s", meeting.MeetingID, req.Room)
	}

	attendee, err := d.attendeeRepo.Create(ctx, meeting.MeetingID, uuid.NewString())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create attendee of meeting %s: %v", meeting.MeetingID, err)
		return nil, errorx.New(errorx.Upstream, "Cannot create attendee")
	}

	return &model.GetMeetingSessionResponse{
		AttendeeResponse: model.AttendeeResponse{Attendee: convertAttendee(attendee)},
		MeetingResponse:  model.MeetingResponse{Meeting: convertMeeting(meeting)},
	}, nil
}
