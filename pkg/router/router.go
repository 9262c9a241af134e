package router

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/questx-lab/chime-integration/config"
	"github.com/questx-lab/chime-integration/pkg/logger"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before (or after) the handler and may replace the request
// context. Returning an error stops the chain.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc always runs once the response has been written.
type CloserFunc func(ctx context.Context)

type Router struct {
	engine *gin.Engine
	inner  gin.IRouter

	cfg      config.Configs
	logger   logger.Logger
	validate *validator.Validate

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(cfg config.Configs, logger logger.Logger) *Router {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		engine:   engine,
		inner:    engine,
		cfg:      cfg,
		logger:   logger,
		validate: newValidator(),
	}
}

// Branch returns a router on the same path prefix that inherits the current
// middlewares. Middlewares added to the branch do not leak into the parent.
func (r *Router) Branch() *Router {
	return r.clone(r.inner)
}

func (r *Router) Group(pattern string) *Router {
	return r.clone(r.inner.Group(pattern))
}

func (r *Router) clone(inner gin.IRouter) *Router {
	return &Router{
		engine:   r.engine,
		inner:    inner,
		cfg:      r.cfg,
		logger:   r.logger,
		validate: r.validate,
		befores:  append([]MiddlewareFunc{}, r.befores...),
		afters:   append([]MiddlewareFunc{}, r.afters...),
		closers:  append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middlewares ...MiddlewareFunc) {
	r.befores = append(r.befores, middlewares...)
}

func (r *Router) After(middlewares ...MiddlewareFunc) {
	r.afters = append(r.afters, middlewares...)
}

func (r *Router) AddCloser(closers ...CloserFunc) {
	r.closers = append(r.closers, closers...)
}

// Handle mounts a plain http.Handler, bypassing the middleware chain.
func (r *Router) Handle(method, pattern string, h http.Handler) {
	r.inner.Handle(method, pattern, gin.WrapH(h))
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by the name clients send them with.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"uri", "form", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return f.Name
	})

	return v
}
