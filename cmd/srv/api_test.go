package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/questx-lab/chime-integration/internal/client"
	"github.com/questx-lab/chime-integration/internal/middleware"
	"github.com/questx-lab/chime-integration/internal/model"
	"github.com/questx-lab/chime-integration/pkg/logger"
	"github.com/questx-lab/chime-integration/pkg/testutil"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*srv, *testutil.FakeChime) {
	t.Helper()

	fake := testutil.NewFakeChime()
	s := &srv{
		ctx:              xcontext.WithLogger(xcontext.WithConfigs(context.Background(), testutil.MockConfigs()), logger.NewNopLogger()),
		meetingsAPI:      fake,
		messagingAPI:     fake,
		credentialIssuer: client.NewStaticCredentialIssuer("AKIATEST", "secret"),
	}

	s.loadRepos()
	s.loadDomains()
	s.loadRouter()
	return s, fake
}

func doRequest(s *srv, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Origin", "https://app.example.com")

	w := httptest.NewRecorder()
	s.handler().ServeHTTP(w, req)
	return w
}

func TestApi_MeetingSession(t *testing.T) {
	s, fake := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/chime-integration/meeting-session?room=lobby", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var raw map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotEmpty(t, raw["meetingResponse"]["Meeting"]["MeetingId"])
	require.Equal(t, "lobby", raw["meetingResponse"]["Meeting"]["ExternalMeetingId"])
	require.NotEmpty(t, raw["attendeeResponse"]["Attendee"]["AttendeeId"])
	require.NotEmpty(t, raw["attendeeResponse"]["Attendee"]["JoinToken"])
	require.Len(t, fake.Meetings(), 1)

	w = doRequest(s, http.MethodGet, "/chime-integration/meeting-session", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, fake.Meetings(), 1)
}

func TestApi_MessagingSessionAndMessage(t *testing.T) {
	s, fake := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/chime-integration/messaging-session/m-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var session model.GetMessagingSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.MsgChannelArn)
	require.Equal(t, testutil.MessagingEndpointURL, session.EndpointResponse.Endpoint.URL)
	require.Equal(t, "us-east-1", session.Region)
	require.Equal(t, "AKIATEST", session.AccessKeyID)

	body, err := json.Marshal(model.SendMessageRequest{
		ChannelMembership: session.MsgChannelMembershipResponse,
		Content:           "hello",
	})
	require.NoError(t, err)

	w = doRequest(s, http.MethodPost, "/chime-integration/message", string(body))
	require.Equal(t, http.StatusOK, w.Code)

	var sent model.SendMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sent))
	require.Equal(t, session.MsgChannelArn, sent.Response.ChannelArn)
	require.Equal(t, session.MsgChannelMembershipResponse.Member, sent.Sender)
	require.False(t, sent.CreatedTimestamp.IsZero())
	require.Len(t, fake.Messages(), 1)

	w = doRequest(s, http.MethodPost, "/chime-integration/message", `{"channelMembership":{},"content":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApi_UpstreamFailure(t *testing.T) {
	s, fake := newTestServer(t)
	fake.FailOn("ListMeetings", context.DeadlineExceeded)

	w := doRequest(s, http.MethodGet, "/chime-integration/meeting-session?room=lobby", "")
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "Cannot list meetings")
}

func TestApi_Health(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
