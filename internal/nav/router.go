// Package nav wires the route-level authorization gate to named destinations:
// protected paths, a login entry point, a safe default, and redirect-and-
// resume semantics for unauthenticated access.
package nav

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/authz"
	"github.com/storeops/storefront-console/internal/session"
)

// Handler renders a destination once access has been granted.
type Handler func(ctx context.Context) error

// Route is one guarded destination. An empty Required list marks the route
// public; protected routes must name at least one role.
type Route struct {
	Path     string
	Required []string
	Handler  Handler
}

// OutcomeKind describes how a navigation attempt ended.
type OutcomeKind int

const (
	// Rendered: the gate allowed access and the route handler ran.
	Rendered OutcomeKind = iota
	// Forbidden: authenticated but under-privileged. No redirect happened;
	// the caller shows a forbidden notice with a way back to the default
	// path.
	Forbidden
	// RedirectedToLogin: anonymous access to a protected route. The original
	// destination was recorded for Resume.
	RedirectedToLogin
)

func (k OutcomeKind) String() string {
	switch k {
	case Rendered:
		return "rendered"
	case Forbidden:
		return "forbidden"
	default:
		return "redirected_to_login"
	}
}

// Outcome reports where a navigation attempt landed.
type Outcome struct {
	Kind OutcomeKind
	// Path is the route that was evaluated (after default fallback).
	Path string
	// ResumeTo is set on RedirectedToLogin: the destination login should
	// come back to.
	ResumeTo string
	// Err is the handler's error when Kind is Rendered.
	Err error
}

// Router holds the routing table and the pending post-login destination.
type Router struct {
	sessions    *session.Store
	log         zerolog.Logger
	loginPath   string
	defaultPath string

	mu      sync.Mutex
	routes  map[string]Route
	pending string
}

// NewRouter creates a router. loginPath and defaultPath must be registered
// as routes before navigating.
func NewRouter(sessions *session.Store, loginPath, defaultPath string, log zerolog.Logger) *Router {
	return &Router{
		sessions:    sessions,
		log:         log.With().Str("component", "nav").Logger(),
		loginPath:   loginPath,
		defaultPath: defaultPath,
		routes:      make(map[string]Route),
	}
}

// Handle registers a route, replacing any previous registration of the path.
func (r *Router) Handle(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route.Path] = route
}

// DefaultPath is the safe landing path linked from forbidden notices.
func (r *Router) DefaultPath() string { return r.defaultPath }

// Navigate evaluates the gate for path and runs its handler when allowed.
// Unknown paths fall back to the default path, like a catch-all route. The
// decision is computed fresh from the current session on every call.
func (r *Router) Navigate(ctx context.Context, path string) Outcome {
	r.mu.Lock()
	route, ok := r.routes[path]
	if !ok {
		path = r.defaultPath
		route = r.routes[path]
	}
	r.mu.Unlock()

	if len(route.Required) == 0 {
		return r.render(ctx, route)
	}

	gate := authz.RouteGate{Required: route.Required}
	out := gate.Evaluate(r.sessions.Current(), path)

	switch out.State {
	case authz.RouteAllow:
		return r.render(ctx, route)

	case authz.RouteForbidden:
		r.log.Info().Str("path", path).Msg("navigation forbidden")
		return Outcome{Kind: Forbidden, Path: path}

	default:
		r.mu.Lock()
		r.pending = out.Target
		r.mu.Unlock()
		r.log.Info().Str("path", path).Msg("navigation requires login")
		return Outcome{Kind: RedirectedToLogin, Path: r.loginPath, ResumeTo: out.Target}
	}
}

// Resume navigates to the destination recorded before the last login
// redirect, clearing it. When nothing is pending it reports false and the
// caller typically lands on the default path.
func (r *Router) Resume(ctx context.Context) (Outcome, bool) {
	r.mu.Lock()
	target := r.pending
	r.pending = ""
	r.mu.Unlock()

	if target == "" {
		return Outcome{}, false
	}
	return r.Navigate(ctx, target), true
}

func (r *Router) render(ctx context.Context, route Route) Outcome {
	var err error
	if route.Handler != nil {
		err = route.Handler(ctx)
	}
	return Outcome{Kind: Rendered, Path: route.Path, Err: err}
}
