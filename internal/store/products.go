package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/request"
	"github.com/storeops/storefront-console/internal/validate"
)

// Products is the domain store for the products collection. Its mutations
// accept a mixed payload of scalar fields plus an optional binary image; the
// gateway transmits the image only when present.
type Products struct {
	*Collection[domain.Product]

	gateway   ports.ProductGateway
	notifier  ports.Notifier
	mutateCtl *request.Controller[*domain.Product]
}

// NewProducts creates a products store backed by the given gateway.
func NewProducts(gateway ports.ProductGateway, notifier ports.Notifier, log zerolog.Logger) *Products {
	return &Products{
		Collection: NewCollection(CollectionConfig[domain.Product]{
			Resource: "products",
			Singular: "Product",
			List:     gateway.List,
			Get:      gateway.Get,
			Delete:   gateway.Delete,
			Notifier: notifier,
			Logger:   log,
		}),
		gateway:   gateway,
		notifier:  notifier,
		mutateCtl: request.New[*domain.Product]("products.mutate", log),
	}
}

// Create adds a product, then resynchronizes the collection.
func (s *Products) Create(ctx context.Context, input ports.ProductInput) error {
	if err := validate.Struct(input); err != nil {
		s.notifier.Error("Create product error", err.Error())
		return err
	}

	terminal := <-s.mutateCtl.Invoke(ctx, func(ctx context.Context) (*domain.Product, error) {
		return s.gateway.Create(ctx, input)
	}, nil)
	if terminal.Err != nil {
		s.notifier.Error("Create product error", terminal.ErrorMessage())
		return terminal.Err
	}

	s.notifier.Success("Product created successfully",
		fmt.Sprintf("Product %s was successfully created", terminal.Payload.Name))
	s.resync(ctx)
	return nil
}

// Update modifies a product, then resynchronizes the collection and, when
// that product's detail view is active, the detail cache too.
func (s *Products) Update(ctx context.Context, id int64, input ports.ProductInput) error {
	if err := validate.Struct(input); err != nil {
		s.notifier.Error("Update product error", err.Error())
		return err
	}

	terminal := <-s.mutateCtl.Invoke(ctx, func(ctx context.Context) (*domain.Product, error) {
		return s.gateway.Update(ctx, id, input)
	}, nil)
	if terminal.Err != nil {
		s.notifier.Error("Update product error", terminal.ErrorMessage())
		return terminal.Err
	}

	s.notifier.Success("Product updated successfully",
		fmt.Sprintf("Product %s was successfully updated", terminal.Payload.Name))
	s.resync(ctx)
	s.resyncDetail(ctx, id)
	return nil
}
