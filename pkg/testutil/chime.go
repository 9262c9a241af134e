package testutil

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/google/uuid"
)

const MessagingEndpointURL = "wss://node001.ue1.ws-messaging.chime.aws"

// FakeChime keeps meetings, users and channels in memory. List operations
// return PageSize items per page. Operations not used by the service panic.
type FakeChime struct {
	chimeiface.ChimeAPI

	PageSize int

	mu          sync.Mutex
	errs        map[string]error
	calls       map[string]int
	bearers     map[string][]string
	meetings    []*chime.Meeting
	attendees   map[string][]*chime.Attendee
	users       map[string]*chime.AppInstanceUser
	channels    []*chime.ChannelSummary
	memberships map[string][]*chime.Identity
	messages    []*chime.SendChannelMessageInput
}

func NewFakeChime() *FakeChime {
	return &FakeChime{
		PageSize:    10,
		errs:        make(map[string]error),
		calls:       make(map[string]int),
		bearers:     make(map[string][]string),
		attendees:   make(map[string][]*chime.Attendee),
		users:       make(map[string]*chime.AppInstanceUser),
		memberships: make(map[string][]*chime.Identity),
	}
}

// FailOn makes every later call of operation return err.
func (f *FakeChime) FailOn(operation string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[operation] = err
}

func (f *FakeChime) Calls(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[operation]
}

// Bearers returns the x-amz-chime-bearer values sent to operation, in order.
func (f *FakeChime) Bearers(operation string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.bearers[operation]...)
}

func (f *FakeChime) Meetings() []*chime.Meeting {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*chime.Meeting{}, f.meetings...)
}

func (f *FakeChime) Attendees(meetingID string) []*chime.Attendee {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*chime.Attendee{}, f.attendees[meetingID]...)
}

func (f *FakeChime) Users() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

func (f *FakeChime) Channels() []*chime.ChannelSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*chime.ChannelSummary{}, f.channels...)
}

func (f *FakeChime) Members(channelArn string) []*chime.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*chime.Identity{}, f.memberships[channelArn]...)
}

func (f *FakeChime) Messages() []*chime.SendChannelMessageInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*chime.SendChannelMessageInput{}, f.messages...)
}

// AddMeeting seeds a meeting that was created outside of the service.
func (f *FakeChime) AddMeeting(externalID string) *chime.Meeting {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addMeeting(externalID)
}

func (f *FakeChime) addMeeting(externalID string) *chime.Meeting {
	id := uuid.NewString()
	m := &chime.Meeting{
		MeetingId:         aws.String(id),
		ExternalMeetingId: aws.String(externalID),
		MediaRegion:       aws.String("us-west-2"),
		MediaPlacement: &chime.MediaPlacement{
			AudioHostUrl:  aws.String(id + ".k.m1.uw2.app.chime.aws:3478"),
			SignalingUrl:  aws.String("wss://signal.m1.uw2.app.chime.aws/control/" + id),
			ScreenDataUrl: aws.String("wss://bitpw.m1.uw2.app.chime.aws:443/v2/screen/" + id),
		},
	}
	f.meetings = append(f.meetings, m)
	return m
}

// AddChannel seeds a channel that was created outside of the service.
func (f *FakeChime) AddChannel(appInstanceArn, name string) *chime.ChannelSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addChannel(appInstanceArn, name, "")
}

func (f *FakeChime) addChannel(appInstanceArn, name, metadata string) *chime.ChannelSummary {
	c := &chime.ChannelSummary{
		ChannelArn: aws.String(fmt.Sprintf("%s/channel/%s", appInstanceArn, uuid.NewString())),
		Name:       aws.String(name),
		Mode:       aws.String(chime.ChannelModeUnrestricted),
		Privacy:    aws.String(chime.ChannelPrivacyPublic),
		Metadata:   aws.String(metadata),
	}
	f.channels = append(f.channels, c)
	return c
}

func (f *FakeChime) begin(operation, bearer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[operation]++
	if bearer != "" {
		f.bearers[operation] = append(f.bearers[operation], bearer)
	}

	return f.errs[operation]
}

func (f *FakeChime) page(total int, token *string) (int, int, *string) {
	start := 0
	if token != nil {
		start, _ = strconv.Atoi(*token)
	}

	end := start + f.PageSize
	if f.PageSize <= 0 || end >= total {
		return start, total, nil
	}

	return start, end, aws.String(strconv.Itoa(end))
}

func (f *FakeChime) ListMeetingsWithContext(
	_ aws.Context, in *chime.ListMeetingsInput, _ ...request.Option,
) (*chime.ListMeetingsOutput, error) {
	if err := f.begin("ListMeetings", ""); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	start, end, next := f.page(len(f.meetings), in.NextToken)
	return &chime.ListMeetingsOutput{
		Meetings:  append([]*chime.Meeting{}, f.meetings[start:end]...),
		NextToken: next,
	}, nil
}

func (f *FakeChime) CreateMeetingWithContext(
	_ aws.Context, in *chime.CreateMeetingInput, _ ...request.Option,
) (*chime.CreateMeetingOutput, error) {
	if err := f.begin("CreateMeeting", ""); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	m := f.addMeeting(aws.StringValue(in.ExternalMeetingId))
	m.MediaRegion = in.MediaRegion
	return &chime.CreateMeetingOutput{Meeting: m}, nil
}

func (f *FakeChime) CreateAttendeeWithContext(
	_ aws.Context, in *chime.CreateAttendeeInput, _ ...request.Option,
) (*chime.CreateAttendeeOutput, error) {
	if err := f.begin("CreateAttendee", ""); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	meetingID := aws.StringValue(in.MeetingId)
	a := &chime.Attendee{
		AttendeeId:     aws.String(uuid.NewString()),
		ExternalUserId: in.ExternalUserId,
		JoinToken:      aws.String(uuid.NewString()),
	}
	f.attendees[meetingID] = append(f.attendees[meetingID], a)
	return &chime.CreateAttendeeOutput{Attendee: a}, nil
}

func (f *FakeChime) CreateAppInstanceUserWithContext(
	_ aws.Context, in *chime.CreateAppInstanceUserInput, _ ...request.Option,
) (*chime.CreateAppInstanceUserOutput, error) {
	if err := f.begin("CreateAppInstanceUser", ""); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	arn := fmt.Sprintf("%s/user/%s", aws.StringValue(in.AppInstanceArn), aws.StringValue(in.AppInstanceUserId))
	if _, ok := f.users[arn]; ok {
		return nil, awserr.New(chime.ErrCodeConflictException, "app instance user already exists", nil)
	}

	f.users[arn] = &chime.AppInstanceUser{
		AppInstanceUserArn: aws.String(arn),
		Name:               in.Name,
	}
	return &chime.CreateAppInstanceUserOutput{AppInstanceUserArn: aws.String(arn)}, nil
}

func (f *FakeChime) GetMessagingSessionEndpointWithContext(
	_ aws.Context, _ *chime.GetMessagingSessionEndpointInput, _ ...request.Option,
) (*chime.GetMessagingSessionEndpointOutput, error) {
	if err := f.begin("GetMessagingSessionEndpoint", ""); err != nil {
		return nil, err
	}

	return &chime.GetMessagingSessionEndpointOutput{
		Endpoint: &chime.MessagingSessionEndpoint{Url: aws.String(MessagingEndpointURL)},
	}, nil
}

func (f *FakeChime) ListChannelsWithContext(
	_ aws.Context, in *chime.ListChannelsInput, _ ...request.Option,
) (*chime.ListChannelsOutput, error) {
	if err := f.begin("ListChannels", aws.StringValue(in.ChimeBearer)); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	start, end, next := f.page(len(f.channels), in.NextToken)
	return &chime.ListChannelsOutput{
		Channels:  append([]*chime.ChannelSummary{}, f.channels[start:end]...),
		NextToken: next,
	}, nil
}

func (f *FakeChime) CreateChannelWithContext(
	_ aws.Context, in *chime.CreateChannelInput, _ ...request.Option,
) (*chime.CreateChannelOutput, error) {
	if err := f.begin("CreateChannel", aws.StringValue(in.ChimeBearer)); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.addChannel(aws.StringValue(in.AppInstanceArn), aws.StringValue(in.Name), aws.StringValue(in.Metadata))
	c.Mode = in.Mode
	c.Privacy = in.Privacy
	return &chime.CreateChannelOutput{ChannelArn: c.ChannelArn}, nil
}

func (f *FakeChime) CreateChannelMembershipWithContext(
	_ aws.Context, in *chime.CreateChannelMembershipInput, _ ...request.Option,
) (*chime.CreateChannelMembershipOutput, error) {
	if err := f.begin("CreateChannelMembership", aws.StringValue(in.ChimeBearer)); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	channelArn := aws.StringValue(in.ChannelArn)
	member := &chime.Identity{Arn: in.MemberArn}
	if user, ok := f.users[aws.StringValue(in.MemberArn)]; ok {
		member.Name = user.Name
	}

	f.memberships[channelArn] = append(f.memberships[channelArn], member)
	return &chime.CreateChannelMembershipOutput{
		ChannelArn: in.ChannelArn,
		Member:     member,
	}, nil
}

func (f *FakeChime) SendChannelMessageWithContext(
	_ aws.Context, in *chime.SendChannelMessageInput, _ ...request.Option,
) (*chime.SendChannelMessageOutput, error) {
	if err := f.begin("SendChannelMessage", aws.StringValue(in.ChimeBearer)); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, in)
	return &chime.SendChannelMessageOutput{
		ChannelArn: in.ChannelArn,
		MessageId:  aws.String(uuid.NewString()),
	}, nil
}
