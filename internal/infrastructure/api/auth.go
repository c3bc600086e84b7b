package api

import (
	"context"
	"net/http"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
)

// AuthGateway implements ports.AuthGateway. Login and Logout manipulate the
// session cookie as a side effect of the server's Set-Cookie headers landing
// in the shared jar.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

func (g *AuthGateway) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, "/users/current-user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (g *AuthGateway) Login(ctx context.Context, creds ports.Credentials) (*domain.User, error) {
	var user domain.User
	payload := loginRequest{Username: creds.Username, Password: creds.Password}
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/login", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *AuthGateway) Logout(ctx context.Context) error {
	return g.client.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (g *AuthGateway) Register(ctx context.Context, input ports.RegistrationInput) (*domain.User, error) {
	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
