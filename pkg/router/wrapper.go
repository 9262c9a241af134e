package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/questx-lab/chime-integration/pkg/errorx"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	befores := append([]MiddlewareFunc{}, router.befores...)
	afters := append([]MiddlewareFunc{}, router.afters...)
	closers := append([]CloserFunc{}, router.closers...)

	return func(c *gin.Context) {
		ctx, cancel := router.newContext(c)
		defer cancel()

		ctx, err := runMiddlewares(ctx, befores)
		if err == nil {
			var resp *Response
			resp, err = handleRequest(router, ctx, c, method, handler)
			if err == nil && resp != nil {
				ctx = xcontext.WithResponse(ctx, resp)
			}
		}

		if err == nil {
			ctx, err = runMiddlewares(ctx, afters)
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
		}

		writeResponse(ctx, c)

		for _, closer := range closers {
			closer(ctx)
		}
	}
}

// newContext detaches the handler from client cancellation so a disconnecting
// caller does not abort a chain of remote calls halfway. The configured request
// timeout still applies.
func (r *Router) newContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(c.Request.Context())
	cancel := context.CancelFunc(func() {})
	if timeout := r.cfg.ApiServer.RequestTimeout.Duration; timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithHTTPRequest(ctx, c.Request)
	ctx = xcontext.WithResponseWriter(ctx, c.Writer)
	ctx = xcontext.WithRoutePattern(ctx, c.FullPath())
	return ctx, cancel
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, m := range middlewares {
		newCtx, err := m(ctx)
		if err != nil {
			return ctx, err
		}

		if newCtx != nil {
			ctx = newCtx
		}
	}

	return ctx, nil
}

func handleRequest[Request, Response any](
	r *Router,
	ctx context.Context,
	c *gin.Context,
	method string,
	handler HandlerFunc[Request, Response],
) (*Response, error) {
	var req Request
	if err := bind(c, method, &req); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot bind request: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid request")
	}

	if err := r.validate.Struct(&req); err != nil {
		return nil, validationError(err)
	}

	return handler(ctx, &req)
}

func bind(c *gin.Context, method string, req any) error {
	switch method {
	case http.MethodGet:
		if err := c.ShouldBindQuery(req); err != nil {
			return err
		}
	case http.MethodPost:
		if err := c.ShouldBindJSON(req); err != nil {
			return err
		}
	default:
		return errors.New("unsupported method")
	}

	if len(c.Params) > 0 {
		return c.ShouldBindUri(req)
	}

	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errorx.New(errorx.BadRequest, "Invalid request")
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return errorx.New(errorx.BadRequest, "Require %s", fe.Field())
	}

	return errorx.New(errorx.BadRequest, "Invalid %s", fe.Field())
}
