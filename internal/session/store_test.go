package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
)

func admin() *domain.User {
	return &domain.User{ID: 1, Email: "admin@store.test", Roles: []string{domain.RoleAdmin}}
}

func TestRolesDerivedFromIdentity(t *testing.T) {
	s := NewStore()

	if roles := s.Current().Roles(); len(roles) != 0 {
		t.Fatalf("anonymous session must have no roles, got %v", roles)
	}

	s.Login(admin())
	if roles := s.Current().Roles(); len(roles) != 1 || roles[0] != domain.RoleAdmin {
		t.Fatalf("roles must mirror the identity, got %v", roles)
	}

	s.Logout()
	if s.Current().Authenticated() {
		t.Fatalf("logout must reset to anonymous")
	}
	if roles := s.Current().Roles(); len(roles) != 0 {
		t.Fatalf("roles must be empty after logout, got %v", roles)
	}
}

func TestHasAnyRole(t *testing.T) {
	cases := []struct {
		name     string
		have     []string
		required []string
		want     bool
	}{
		{"intersection independent of order", []string{domain.RoleUser}, []string{domain.RoleAdmin, domain.RoleUser}, true},
		{"no roles", nil, []string{domain.RoleAdmin, domain.RoleUser}, false},
		{"disjoint", []string{"ROLE_AUDITOR"}, []string{domain.RoleAdmin, domain.RoleUser}, false},
		{"empty requirement denies", []string{domain.RoleAdmin}, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			s.Login(&domain.User{ID: 7, Roles: tc.have})
			if got := s.HasAnyRole(tc.required...); got != tc.want {
				t.Fatalf("HasAnyRole(%v) with %v = %v, want %v", tc.required, tc.have, got, tc.want)
			}
		})
	}

	if NewStore().HasAnyRole(domain.RoleAdmin) {
		t.Fatalf("anonymous session must never pass a role check")
	}
}

func TestSubscribeAndCancel(t *testing.T) {
	s := NewStore()

	var seen []bool
	cancel := s.Subscribe(func(sess Session) {
		seen = append(seen, sess.Authenticated())
	})

	s.Login(admin())
	s.Logout()
	cancel()
	s.Login(admin())

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("expected exactly [true false], got %v", seen)
	}
}

type stubAuthGateway struct {
	user *domain.User
	err  error
}

func (g *stubAuthGateway) CurrentUser(context.Context) (*domain.User, error) {
	return g.user, g.err
}

func (g *stubAuthGateway) Login(context.Context, ports.Credentials) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (g *stubAuthGateway) Logout(context.Context) error { return nil }

func (g *stubAuthGateway) Register(context.Context, ports.RegistrationInput) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func TestBootstrapLogsInOnSuccess(t *testing.T) {
	s := NewStore()
	Bootstrap(context.Background(), &stubAuthGateway{user: admin()}, s, zerolog.Nop())

	if !s.Current().Authenticated() {
		t.Fatalf("bootstrap must log in when the probe succeeds")
	}
}

func TestBootstrapSilentOnFailure(t *testing.T) {
	s := NewStore()
	Bootstrap(context.Background(), &stubAuthGateway{err: domain.NewStatusError(401, "")}, s, zerolog.Nop())

	if s.Current().Authenticated() {
		t.Fatalf("bootstrap must leave the store anonymous on failure")
	}
}
