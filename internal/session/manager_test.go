package session

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/notify"
)

type scriptedAuthGateway struct {
	loginUser *domain.User
	loginErr  error
	logoutErr error
}

func (g *scriptedAuthGateway) CurrentUser(context.Context) (*domain.User, error) {
	return nil, domain.NewStatusError(401, "")
}

func (g *scriptedAuthGateway) Login(context.Context, ports.Credentials) (*domain.User, error) {
	return g.loginUser, g.loginErr
}

func (g *scriptedAuthGateway) Logout(context.Context) error { return g.logoutErr }

func (g *scriptedAuthGateway) Register(_ context.Context, input ports.RegistrationInput) (*domain.User, error) {
	return &domain.User{ID: 50, Email: input.Email}, nil
}

func validCreds() ports.Credentials {
	return ports.Credentials{Username: "admin@store.test", Password: "secret123"}
}

func TestManagerLoginReplacesIdentity(t *testing.T) {
	store := NewStore()
	gw := &scriptedAuthGateway{loginUser: admin()}
	m := NewManager(store, gw, notify.NewCapture(), zerolog.Nop())

	if err := m.Login(context.Background(), validCreds()); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !store.Current().Authenticated() {
		t.Fatalf("identity not stored after login")
	}
}

func TestManagerLoginFailureResetsToAnonymous(t *testing.T) {
	store := NewStore()
	store.Login(admin())
	sink := notify.NewCapture()
	gw := &scriptedAuthGateway{loginErr: domain.NewStatusError(401, "invalid credentials")}
	m := NewManager(store, gw, sink, zerolog.Nop())

	if err := m.Login(context.Background(), validCreds()); err == nil {
		t.Fatalf("expected login failure")
	}
	if store.Current().Authenticated() {
		t.Fatalf("failed authentication must leave the session anonymous")
	}
	if last := sink.Last(); last.Level != "error" || last.Detail != "invalid credentials" {
		t.Fatalf("unexpected notification %+v", last)
	}
}

func TestManagerLoginValidation(t *testing.T) {
	store := NewStore()
	m := NewManager(store, &scriptedAuthGateway{}, notify.NewCapture(), zerolog.Nop())

	err := m.Login(context.Background(), ports.Credentials{Username: "not-an-email", Password: "x"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestManagerLogoutAlwaysResetsLocally(t *testing.T) {
	store := NewStore()
	store.Login(admin())
	gw := &scriptedAuthGateway{logoutErr: domain.NewNetworkError(context.DeadlineExceeded)}
	m := NewManager(store, gw, notify.NewCapture(), zerolog.Nop())

	if err := m.Logout(context.Background()); err == nil {
		t.Fatalf("expected the transport failure to propagate")
	}
	if store.Current().Authenticated() {
		t.Fatalf("logout must reset the local session even when the server call fails")
	}
}

func TestManagerRegisterDoesNotLogIn(t *testing.T) {
	store := NewStore()
	sink := notify.NewCapture()
	m := NewManager(store, &scriptedAuthGateway{}, sink, zerolog.Nop())

	birth, _ := domain.ParseDate("1995-06-01")
	input := ports.RegistrationInput{
		FirstName:       "New",
		LastName:        "User",
		Email:           "new@store.test",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Gender:          domain.GenderOther,
		BirthDate:       birth,
	}
	if err := m.Register(context.Background(), input); err != nil {
		t.Fatalf("register: %v", err)
	}
	if store.Current().Authenticated() {
		t.Fatalf("registration must not log the account in")
	}
	if last := sink.Last(); last.Level != "success" || last.Title != "Registration complete" {
		t.Fatalf("unexpected notification %+v", last)
	}
}

func TestManagerRegisterPasswordMismatch(t *testing.T) {
	m := NewManager(NewStore(), &scriptedAuthGateway{}, notify.NewCapture(), zerolog.Nop())

	birth, _ := domain.ParseDate("1995-06-01")
	input := ports.RegistrationInput{
		FirstName:       "New",
		LastName:        "User",
		Email:           "new@store.test",
		Password:        "secret123",
		ConfirmPassword: "different",
		Gender:          domain.GenderOther,
		BirthDate:       birth,
	}
	if err := m.Register(context.Background(), input); err == nil {
		t.Fatalf("mismatched passwords must fail validation")
	}
}
