package ports

import (
	"context"

	"github.com/storeops/storefront-console/internal/core/domain"
)

// Credentials carries a login attempt.
type Credentials struct {
	Username string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegistrationInput carries a self-service account registration.
type RegistrationInput struct {
	FirstName       string        `json:"firstName" validate:"required"`
	LastName        string        `json:"lastName" validate:"required"`
	Email           string        `json:"email" validate:"required,email"`
	Password        string        `json:"password" validate:"required,min=8"`
	ConfirmPassword string        `json:"confirmPassword" validate:"required,eqfield=Password"`
	Gender          domain.Gender `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	BirthDate       domain.Date   `json:"birthDate" validate:"required"`
}

// AuthGateway is the transport surface for session management. The session
// credential itself is a server-managed cookie held by the transport; callers
// only ever see identities.
type AuthGateway interface {
	// CurrentUser resolves the identity bound to the transport's session
	// cookie, if any.
	CurrentUser(ctx context.Context) (*domain.User, error)
	Login(ctx context.Context, creds Credentials) (*domain.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, input RegistrationInput) (*domain.User, error)
}
