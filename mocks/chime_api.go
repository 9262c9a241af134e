package mocks

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/chime"
	"github.com/aws/aws-sdk-go/service/chime/chimeiface"
	"github.com/stretchr/testify/mock"
)

// ChimeAPI mocks the Chime operations used by the repositories. Calling any
// other operation panics on the nil embedded interface.
type ChimeAPI struct {
	chimeiface.ChimeAPI
	mock.Mock
}

func (c *ChimeAPI) ListMeetingsWithContext(
	arg1 aws.Context, arg2 *chime.ListMeetingsInput, arg3 ...request.Option,
) (*chime.ListMeetingsOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.ListMeetingsOutput), args.Error(1)
}

func (c *ChimeAPI) CreateMeetingWithContext(
	arg1 aws.Context, arg2 *chime.CreateMeetingInput, arg3 ...request.Option,
) (*chime.CreateMeetingOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.CreateMeetingOutput), args.Error(1)
}

func (c *ChimeAPI) CreateAttendeeWithContext(
	arg1 aws.Context, arg2 *chime.CreateAttendeeInput, arg3 ...request.Option,
) (*chime.CreateAttendeeOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.CreateAttendeeOutput), args.Error(1)
}

func (c *ChimeAPI) CreateAppInstanceUserWithContext(
	arg1 aws.Context, arg2 *chime.CreateAppInstanceUserInput, arg3 ...request.Option,
) (*chime.CreateAppInstanceUserOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.CreateAppInstanceUserOutput), args.Error(1)
}

func (c *ChimeAPI) GetMessagingSessionEndpointWithContext(
	arg1 aws.Context, arg2 *chime.GetMessagingSessionEndpointInput, arg3 ...request.Option,
) (*chime.GetMessagingSessionEndpointOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.GetMessagingSessionEndpointOutput), args.Error(1)
}

func (c *ChimeAPI) ListChannelsWithContext(
	arg1 aws.Context, arg2 *chime.ListChannelsInput, arg3 ...request.Option,
) (*chime.ListChannelsOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.ListChannelsOutput), args.Error(1)
}

func (c *ChimeAPI) CreateChannelWithContext(
	arg1 aws.Context, arg2 *chime.CreateChannelInput, arg3 ...request.Option,
) (*chime.CreateChannelOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.CreateChannelOutput), args.Error(1)
}

func (c *ChimeAPI) CreateChannelMembershipWithContext(
	arg1 aws.Context, arg2 *chime.CreateChannelMembershipInput, arg3 ...request.Option,
) (*chime.CreateChannelMembershipOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.CreateChannelMembershipOutput), args.Error(1)
}

func (c *ChimeAPI) SendChannelMessageWithContext(
	arg1 aws.Context, arg2 *chime.SendChannelMessageInput, arg3 ...request.Option,
) (*chime.SendChannelMessageOutput, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chime.SendChannelMessageOutput), args.Error(1)
}
