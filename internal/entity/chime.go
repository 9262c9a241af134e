package entity

import "time"

// Records below are owned by Chime. They only live for the duration of the
// request that fetched or created them.

type Meeting struct {
	MeetingID         string
	ExternalMeetingID string
	MediaRegion       string
	MediaPlacement    MediaPlacement
}

type MediaPlacement struct {
	AudioHostURL      string
	AudioFallbackURL  string
	ScreenDataURL     string
	ScreenSharingURL  string
	ScreenViewingURL  string
	SignalingURL      string
	TurnControlURL    string
	EventIngestionURL string
}

type Attendee struct {
	AttendeeID     string
	ExternalUserID string
	JoinToken      string
}

type AppInstanceUser struct {
	Arn    string
	UserID string
	Name   string
}

type MessagingEndpoint struct {
	URL string
}

type Channel struct {
	Arn      string
	Name     string
	Mode     string
	Privacy  string
	Metadata string
}

type Identity struct {
	Arn  string
	Name string
}

type ChannelMembership struct {
	ChannelArn string
	Member     Identity
}

type Message struct {
	ChannelArn string
	MessageID  string
}

// Credentials are handed to messaging clients so they can connect to the
// messaging endpoint themselves.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}
