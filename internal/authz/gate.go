// Package authz gates protected regions by role membership. One pure decision
// rule backs both manifestations — route-level outcomes and component-level
// visibility — so the two can never drift apart.
package authz

import "github.com/storeops/storefront-console/internal/session"

// Decision is the ephemeral result of evaluating a session against a
// required-role set. It is recomputed on every evaluation, never cached
// across session changes.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated: no identity at all. Callers redirect to the login
	// entry point, preserving the original destination.
	DenyUnauthenticated
	// DenyForbidden: authenticated but under-privileged. Callers render a
	// forbidden notice in place; no redirect.
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	default:
		return "deny_forbidden"
	}
}

// Decide applies the shared gate rule: anonymous sessions are
// unauthenticated; authenticated sessions without a role intersection are
// forbidden. An empty requirement list is treated as forbidden rather than
// open.
func Decide(sess session.Session, required []string) Decision {
	if !sess.Authenticated() {
		return DenyUnauthenticated
	}
	if !sess.HasAnyRole(required...) {
		return DenyForbidden
	}
	return Allow
}

// Visible is the component-level gate: render children iff the session is
// authenticated and role-intersecting. Anything else hides them entirely —
// used for affordances like an "Edit" action, where denial should leave no
// trace.
func Visible(sess session.Session, required ...string) bool {
	return Decide(sess, required) == Allow
}
