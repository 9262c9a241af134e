package model

import "time"

type GetMessagingSessionRequest struct {
	MeetingID string `uri:"meetingId" json:"meetingId" validate:"required"`
}

type GetMessagingSessionResponse struct {
	MsgChannelArn                string            `json:"msgChannelArn"`
	MsgChannelMembershipResponse ChannelMembership `json:"msgChannelMembershipResponse"`
	EndpointResponse             EndpointResponse  `json:"endpointResponse"`

	Region          string     `json:"region"`
	AccessKeyID     string     `json:"accessKeyId"`
	SecretAccessKey string     `json:"secretAccessKey"`
	SessionToken    string     `json:"sessionToken,omitempty"`
	Expiration      *time.Time `json:"expiration,omitempty"`
}

type EndpointResponse struct {
	Endpoint MessagingEndpoint `json:"Endpoint"`
}

type MessagingEndpoint struct {
	URL string `json:"Url"`
}

type ChannelMembership struct {
	ChannelArn string   `json:"ChannelArn" validate:"required"`
	Member     Identity `json:"Member"`
}

type Identity struct {
	Arn  string `json:"Arn" validate:"required"`
	Name string `json:"Name,omitempty"`
}

type SendMessageRequest struct {
	ChannelMembership ChannelMembership `json:"channelMembership"`
	Content           string            `json:"content" validate:"required,max=4096"`
}

type SendMessageResponse struct {
	Response         SentMessage `json:"response"`
	CreatedTimestamp time.Time   `json:"CreatedTimestamp"`
	Sender           Identity    `json:"Sender"`
}

type SentMessage struct {
	ChannelArn string `json:"ChannelArn"`
	MessageID  string `json:"MessageId"`
}
