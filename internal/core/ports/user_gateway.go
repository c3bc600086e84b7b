package ports

import (
	"context"

	"github.com/storeops/storefront-console/internal/core/domain"
)

// UserInput carries the fields an administrator may set when creating or
// updating an account. Constraint tags mirror the server-side rules so bad
// input fails before a round trip.
type UserInput struct {
	FirstName string        `json:"firstName" validate:"required"`
	LastName  string        `json:"lastName" validate:"required"`
	Email     string        `json:"email" validate:"required,email"`
	Password  string        `json:"password,omitempty" validate:"omitempty,min=8"`
	Gender    domain.Gender `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	BirthDate domain.Date   `json:"birthDate" validate:"required"`
	Enabled   bool          `json:"isEnabled"`
}

// UserGateway is the transport surface for the users collection.
type UserGateway interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
