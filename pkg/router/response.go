package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/chime-integration/pkg/errorx"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
)

type errorResponse struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
}

func newErrorResponse(err error) (int, errorResponse) {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return httpStatus(errx.Code), errorResponse{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.TooManyRequests:
		return http.StatusTooManyRequests
	case errorx.NotImplemented:
		return http.StatusNotImplemented
	case errorx.Upstream:
		return http.StatusBadGateway
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Successful responses are written as-is, without an envelope, because the
// browser SDK consumes the Chime payloads directly.
func writeResponse(ctx context.Context, c *gin.Context) {
	if err := xcontext.Error(ctx); err != nil {
		status, resp := newErrorResponse(err)
		c.JSON(status, resp)
		return
	}

	if resp := xcontext.Response(ctx); resp != nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	c.Status(http.StatusNoContent)
}
