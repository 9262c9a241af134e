package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/questx-lab/chime-integration/pkg/router"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
)

const HeaderRequestID = "X-Request-ID"

// WithRequestID reuses the caller's X-Request-ID or generates one, and echoes
// it back on the response.
func WithRequestID() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		id := ""
		if req := xcontext.HTTPRequest(ctx); req != nil {
			id = req.Header.Get(HeaderRequestID)
		}

		if id == "" {
			id = uuid.NewString()
		}

		if w := xcontext.ResponseWriter(ctx); w != nil {
			w.Header().Set(HeaderRequestID, id)
		}

		return xcontext.WithRequestID(ctx, id), nil
	}
}
