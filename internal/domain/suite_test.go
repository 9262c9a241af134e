package domain

import (
	"errors"
	"testing"

	"github.com/questx-lab/chime-integration/internal/client"
	"github.com/questx-lab/chime-integration/internal/repository"
	"github.com/questx-lab/chime-integration/pkg/errorx"
	"github.com/questx-lab/chime-integration/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestMeetingDomain(fake *testutil.FakeChime) *meetingDomain {
	return NewMeetingDomain(
		repository.NewMeetingRepository(fake, "us-west-2"),
		repository.NewAttendeeRepository(fake),
	)
}

func newTestMessagingDomain(fake *testutil.FakeChime) *messagingDomain {
	return NewMessagingDomain(
		repository.NewAppInstanceUserRepository(fake, testutil.AppInstanceArn),
		repository.NewMessagingEndpointRepository(fake),
		repository.NewChannelRepository(fake, testutil.AppInstanceArn),
		repository.NewChannelMembershipRepository(fake),
		repository.NewMessageRepository(fake),
		client.NewStaticCredentialIssuer("AKIATEST", "secret"),
	)
}

func requireErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()

	var errx errorx.Error
	require.True(t, errors.As(err, &errx), "expected errorx.Error, got %v", err)
	require.Equal(t, code, errx.Code)
}
