package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/request"
	"github.com/storeops/storefront-console/internal/validate"
)

// Users is the domain store for the users collection.
type Users struct {
	*Collection[domain.User]

	gateway   ports.UserGateway
	notifier  ports.Notifier
	mutateCtl *request.Controller[*domain.User]
}

// NewUsers creates a users store backed by the given gateway.
func NewUsers(gateway ports.UserGateway, notifier ports.Notifier, log zerolog.Logger) *Users {
	return &Users{
		Collection: NewCollection(CollectionConfig[domain.User]{
			Resource: "users",
			Singular: "User",
			List:     gateway.List,
			Get:      gateway.Get,
			Delete:   gateway.Delete,
			Notifier: notifier,
			Logger:   log,
		}),
		gateway:   gateway,
		notifier:  notifier,
		mutateCtl: request.New[*domain.User]("users.mutate", log),
	}
}

// Create adds a new account, then resynchronizes the collection. The created
// entity is never inserted locally; the follow-up fetch is what makes it
// visible, ids and defaults included.
func (s *Users) Create(ctx context.Context, input ports.UserInput) error {
	if err := validate.Struct(input); err != nil {
		s.notifier.Error("Create user error", err.Error())
		return err
	}

	terminal := <-s.mutateCtl.Invoke(ctx, func(ctx context.Context) (*domain.User, error) {
		return s.gateway.Create(ctx, input)
	}, nil)
	if terminal.Err != nil {
		s.notifier.Error("Create user error", terminal.ErrorMessage())
		return terminal.Err
	}

	s.notifier.Success("Create user success", "User was successfully created")
	s.resync(ctx)
	return nil
}

// Update modifies an account, then resynchronizes the collection and, when
// that account's detail view is active, the detail cache too.
func (s *Users) Update(ctx context.Context, id int64, input ports.UserInput) error {
	if err := validate.Struct(input); err != nil {
		s.notifier.Error("Update user error", err.Error())
		return err
	}

	terminal := <-s.mutateCtl.Invoke(ctx, func(ctx context.Context) (*domain.User, error) {
		return s.gateway.Update(ctx, id, input)
	}, nil)
	if terminal.Err != nil {
		s.notifier.Error("Update user error", terminal.ErrorMessage())
		return terminal.Err
	}

	s.notifier.Success("Update user success", "User was successfully updated")
	s.resync(ctx)
	s.resyncDetail(ctx, id)
	return nil
}
