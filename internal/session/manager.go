package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/request"
	"github.com/storeops/storefront-console/internal/validate"
)

// Manager drives the login/logout/register transitions of a Store through
// the auth gateway. It is the only writer of the Store besides Bootstrap.
type Manager struct {
	store    *Store
	gateway  ports.AuthGateway
	notifier ports.Notifier
	authCtl  *request.Controller[*domain.User]
}

func NewManager(store *Store, gateway ports.AuthGateway, notifier ports.Notifier, log zerolog.Logger) *Manager {
	return &Manager{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
		authCtl:  request.New[*domain.User]("auth", log),
	}
}

// Store returns the session store the manager writes to.
func (m *Manager) Store() *Store { return m.store }

// Login authenticates and replaces the held identity. A failed attempt
// resets the session to anonymous: authentication failure and logout leave
// the same state behind.
func (m *Manager) Login(ctx context.Context, creds ports.Credentials) error {
	if err := validate.Struct(creds); err != nil {
		m.notifier.Error("Login error", err.Error())
		return err
	}

	terminal := <-m.authCtl.Invoke(ctx, func(ctx context.Context) (*domain.User, error) {
		return m.gateway.Login(ctx, creds)
	}, m.store.Login)
	if terminal.Err != nil {
		m.store.Logout()
		m.notifier.Error("Login error", terminal.ErrorMessage())
		return terminal.Err
	}
	return nil
}

// Logout ends the server-side session and resets the local one. The local
// reset happens even when the server call fails; an anonymous client with a
// dangling server session is safer than the reverse.
func (m *Manager) Logout(ctx context.Context) error {
	terminal := <-m.authCtl.Invoke(ctx, func(ctx context.Context) (*domain.User, error) {
		return nil, m.gateway.Logout(ctx)
	}, nil)
	m.store.Logout()
	if terminal.Err != nil {
		m.notifier.Error("Logout error", terminal.ErrorMessage())
		return terminal.Err
	}
	return nil
}

// Register creates a new account. Registration does not log the account in;
// the caller decides whether to follow up with Login.
func (m *Manager) Register(ctx context.Context, input ports.RegistrationInput) error {
	if err := validate.Struct(input); err != nil {
		m.notifier.Error("Registration error", err.Error())
		return err
	}

	terminal := <-m.authCtl.Invoke(ctx, func(ctx context.Context) (*domain.User, error) {
		return m.gateway.Register(ctx, input)
	}, nil)
	if terminal.Err != nil {
		m.notifier.Error("Registration error", terminal.ErrorMessage())
		return terminal.Err
	}

	m.notifier.Success("Registration complete",
		"Account "+terminal.Payload.Email+" was successfully created")
	return nil
}
