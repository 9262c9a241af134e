package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/questx-lab/chime-integration/config"
	"github.com/questx-lab/chime-integration/pkg/errorx"
	"github.com/questx-lab/chime-integration/pkg/logger"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type roomRequest struct {
	Room string `form:"room" json:"room" validate:"required"`
}

type pathRequest struct {
	MeetingID string `uri:"meetingId" validate:"required"`
}

type member struct {
	Arn string `json:"Arn" validate:"required"`
}

type bodyRequest struct {
	Member  member `json:"member"`
	Content string `json:"content" validate:"required"`
}

type echoResponse struct {
	Value string `json:"value"`
}

func newTestRouter() *Router {
	return New(config.Default(), logger.NewNopLogger())
}

func serve(r *Router, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRouter_GETQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/session", func(ctx context.Context, req *roomRequest) (*echoResponse, error) {
		return &echoResponse{Value: req.Room}, nil
	})

	w := serve(r, http.MethodGet, "/session?room=lobby", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"value":"lobby"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/session", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
	require.Equal(t, "Require room", resp.Error)
}

func TestRouter_GETPath(t *testing.T) {
	r := newTestRouter()
	GET(r, "/messaging/:meetingId", func(ctx context.Context, req *pathRequest) (*echoResponse, error) {
		return &echoResponse{Value: req.MeetingID}, nil
	})

	w := serve(r, http.MethodGet, "/messaging/m-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"value":"m-1"}`, w.Body.String())
}

func TestRouter_POSTBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/message", func(ctx context.Context, req *bodyRequest) (*echoResponse, error) {
		return &echoResponse{Value: req.Member.Arn + "|" + req.Content}, nil
	})

	w := serve(r, http.MethodPost, "/message", `{"member":{"Arn":"arn:1"},"content":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"value":"arn:1|hi"}`, w.Body.String())

	w = serve(r, http.MethodPost, "/message", `{"member":{},"content":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Require Arn", decodeError(t, w).Error)

	w = serve(r, http.MethodPost, "/message", `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid request", decodeError(t, w).Error)
}

func TestRouter_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int64
	}{
		{
			name:       "upstream",
			err:        errorx.New(errorx.Upstream, "Cannot reach chime"),
			wantStatus: http.StatusBadGateway,
			wantCode:   int64(errorx.Upstream),
		},
		{
			name:       "not found",
			err:        errorx.New(errorx.NotFound, "Not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   int64(errorx.NotFound),
		},
		{
			name:       "unknown",
			err:        errorx.Unknown,
			wantStatus: http.StatusInternalServerError,
			wantCode:   int64(errorx.Unknown.Code),
		},
		{
			name:       "raw error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   int64(errorx.Unknown.Code),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			GET(r, "/fail", func(ctx context.Context, req *struct{}) (*echoResponse, error) {
				return nil, tt.err
			})

			w := serve(r, http.MethodGet, "/fail", "")
			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}
}

type markerKey struct{}

func TestRouter_Middlewares(t *testing.T) {
	r := newTestRouter()

	var closed []error
	r.AddCloser(func(ctx context.Context) {
		closed = append(closed, xcontext.Error(ctx))
	})

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return context.WithValue(ctx, markerKey{}, "set"), nil
	})
	GET(branch, "/marked", func(ctx context.Context, req *struct{}) (*echoResponse, error) {
		v, _ := ctx.Value(markerKey{}).(string)
		return &echoResponse{Value: v}, nil
	})

	denied := r.Branch()
	denied.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	})
	GET(denied, "/denied", func(ctx context.Context, req *struct{}) (*echoResponse, error) {
		t.Fatal("handler must not run")
		return nil, nil
	})

	GET(r, "/plain", func(ctx context.Context, req *struct{}) (*echoResponse, error) {
		v, _ := ctx.Value(markerKey{}).(string)
		return &echoResponse{Value: v}, nil
	})

	w := serve(r, http.MethodGet, "/marked", "")
	require.JSONEq(t, `{"value":"set"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/plain", "")
	require.JSONEq(t, `{"value":""}`, w.Body.String())

	w = serve(r, http.MethodGet, "/denied", "")
	require.Equal(t, http.StatusForbidden, w.Code)

	require.Len(t, closed, 3)
	require.NoError(t, closed[0])
	require.NoError(t, closed[1])
	require.Error(t, closed[2])
}

func TestRouter_DetachedContext(t *testing.T) {
	r := newTestRouter()
	GET(r, "/ctx", func(ctx context.Context, req *struct{}) (*echoResponse, error) {
		_, hasDeadline := ctx.Deadline()
		require.True(t, hasDeadline)
		require.NotNil(t, xcontext.HTTPRequest(ctx))
		return &echoResponse{Value: xcontext.Configs(ctx).ApiServer.Port}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
	reqCtx, cancel := context.WithCancel(req.Context())
	cancel()

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req.WithContext(reqCtx))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"value":"8080"}`, w.Body.String())
}
