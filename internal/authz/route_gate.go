package authz

import "github.com/storeops/storefront-console/internal/session"

// RouteState is the state of a route-level gate. Unknown lasts only while the
// session is still being resolved; once evaluated, the gate lands on exactly
// one of the other three and stays there until the session itself changes.
type RouteState int

const (
	RouteUnknown RouteState = iota
	RouteAllow
	RouteForbidden
	RouteRedirect
)

func (s RouteState) String() string {
	switch s {
	case RouteAllow:
		return "allow"
	case RouteForbidden:
		return "forbidden"
	case RouteRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Outcome is the result of a route-level evaluation. Target is the location
// that was asked for; on RouteRedirect it is what login should resume to.
type Outcome struct {
	State  RouteState
	Target string
}

// RouteGate evaluates access to one protected region. It holds no session of
// its own; the caller re-evaluates whenever the session changes, which makes
// stale decisions impossible.
type RouteGate struct {
	Required []string
}

// Evaluate maps the shared decision rule onto route outcomes. The original
// destination always travels with the outcome so an unauthenticated visitor
// can be sent back after logging in. A forbidden visitor is NOT redirected:
// they are authenticated, just under-privileged, and the two denials must
// stay distinguishable.
func (g RouteGate) Evaluate(sess session.Session, target string) Outcome {
	switch Decide(sess, g.Required) {
	case Allow:
		return Outcome{State: RouteAllow, Target: target}
	case DenyUnauthenticated:
		return Outcome{State: RouteRedirect, Target: target}
	default:
		return Outcome{State: RouteForbidden, Target: target}
	}
}
