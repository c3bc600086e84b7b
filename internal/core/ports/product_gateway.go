package ports

import (
	"context"

	"github.com/storeops/storefront-console/internal/core/domain"
)

// ProductInput carries product fields plus an optional binary image. When
// Image is nil the outgoing request contains no image part at all.
type ProductInput struct {
	Name             string  `validate:"required,max=128"`
	ShortDescription string  `validate:"required,max=40"`
	Description      string  `validate:"required,max=1024"`
	Quantity         int64   `validate:"min=0"`
	Price            float64 `validate:"min=0"`
	Available        bool
	Image            *domain.ImageFile
}

// ProductGateway is the transport surface for the products collection.
// Create and Update are multipart when the input carries an image.
type ProductGateway interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
