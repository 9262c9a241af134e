package domain

import (
	"time"

	"github.com/questx-lab/chime-integration/internal/entity"
	"github.com/questx-lab/chime-integration/internal/model"
)

func convertMeeting(meeting *entity.Meeting) model.Meeting {
	m := model.Meeting{
		MeetingID:         meeting.MeetingID,
		ExternalMeetingID: meeting.ExternalMeetingID,
		MediaRegion:       meeting.MediaRegion,
	}

	p := meeting.MediaPlacement
	if p != (entity.MediaPlacement{}) {
		m.MediaPlacement = &model.MediaPlacement{
			AudioHostURL:      p.AudioHostURL,
			AudioFallbackURL:  p.AudioFallbackURL,
			ScreenDataURL:     p.ScreenDataURL,
			ScreenSharingURL:  p.ScreenSharingURL,
			ScreenViewingURL:  p.ScreenViewingURL,
			SignalingURL:      p.SignalingURL,
			TurnControlURL:    p.TurnControlURL,
			EventIngestionURL: p.EventIngestionURL,
		}
	}

	return m
}

func convertAttendee(attendee *entity.Attendee) model.Attendee {
	return model.Attendee{
		AttendeeID:     attendee.AttendeeID,
		ExternalUserID: attendee.ExternalUserID,
		JoinToken:      attendee.JoinToken,
	}
}

func convertChannelMembership(membership *entity.ChannelMembership) model.ChannelMembership {
	return model.ChannelMembership{
		ChannelArn: membership.ChannelArn,
		Member: model.Identity{
			Arn:  membership.Member.Arn,
			Name: membership.Member.Name,
		},
	}
}

// convertMessage falls back to the requested channel when Chime leaves it out
// of the send output.
func convertMessage(msg *entity.Message, channelArn string) model.SentMessage {
	if msg.ChannelArn != "" {
		channelArn = msg.ChannelArn
	}

	return model.SentMessage{
		ChannelArn: channelArn,
		MessageID:  msg.MessageID,
	}
}

func convertExpiration(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
