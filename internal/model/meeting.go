package model

// Field names follow the Chime API payloads because the browser SDK reads them
// without any mapping.

type GetMeetingSessionRequest struct {
	Room string `form:"room" json:"room" validate:"required"`
}

type GetMeetingSessionResponse struct {
	AttendeeResponse AttendeeResponse `json:"attendeeResponse"`
	MeetingResponse  MeetingResponse  `json:"meetingResponse"`
}

type MeetingResponse struct {
	Meeting Meeting `json:"Meeting"`
}

type AttendeeResponse struct {
	Attendee Attendee `json:"Attendee"`
}

type Meeting struct {
	MeetingID         string          `json:"MeetingId"`
	ExternalMeetingID string          `json:"ExternalMeetingId,omitempty"`
	MediaRegion       string          `json:"MediaRegion,omitempty"`
	MediaPlacement    *MediaPlacement `json:"MediaPlacement,omitempty"`
}

type MediaPlacement struct {
	AudioHostURL      string `json:"AudioHostUrl,omitempty"`
	AudioFallbackURL  string `json:"AudioFallbackUrl,omitempty"`
	ScreenDataURL     string `json:"ScreenDataUrl,omitempty"`
	ScreenSharingURL  string `json:"ScreenSharingUrl,omitempty"`
	ScreenViewingURL  string `json:"ScreenViewingUrl,omitempty"`
	SignalingURL      string `json:"SignalingUrl,omitempty"`
	TurnControlURL    string `json:"TurnControlUrl,omitempty"`
	EventIngestionURL string `json:"EventIngestionUrl,omitempty"`
}

type Attendee struct {
	AttendeeID     string `json:"AttendeeId"`
	ExternalUserID string `json:"ExternalUserId"`
	JoinToken      string `json:"JoinToken"`
}
