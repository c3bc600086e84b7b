package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
)

// UserGateway implements ports.UserGateway with plain JSON round trips.
type UserGateway struct {
	client *Client
}

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

func (g *UserGateway) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *UserGateway) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *UserGateway) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodPost, "/users", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *UserGateway) Update(ctx context.Context, id int64, input ports.UserInput) (*domain.User, error) {
	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *UserGateway) Delete(ctx context.Context, id int64) error {
	return g.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
