package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/authz"
	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/infrastructure/api"
	"github.com/storeops/storefront-console/internal/nav"
	"github.com/storeops/storefront-console/internal/notify"
	"github.com/storeops/storefront-console/internal/pkg/config"
	"github.com/storeops/storefront-console/internal/session"
	"github.com/storeops/storefront-console/internal/store"
	"github.com/storeops/storefront-console/pkg/logger"
)

// app holds the wired object graph every command runs against. Construction
// order mirrors the dependency order: transport, session, stores, router.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	client   *api.Client
	auth     *session.Manager
	sessions *session.Store
	users    *store.Users
	products *store.Products
	router   *nav.Router
	notifier ports.Notifier
}

// newApp wires the application and resolves any pre-existing server-side
// session. When configured credentials are present and the probe came back
// anonymous, it logs in with them.
func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	client, err := api.NewClient(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.HTTPTimeout}, log)
	if err != nil {
		return nil, err
	}

	notifier := notify.NewLogSink(log)
	sessions := session.NewStore()
	authGateway := api.NewAuthGateway(client)
	manager := session.NewManager(sessions, authGateway, notifier, log)

	session.Bootstrap(ctx, authGateway, sessions, log)
	if !sessions.Current().Authenticated() && cfg.Username != "" {
		creds := ports.Credentials{Username: cfg.Username, Password: cfg.Password}
		if err := manager.Login(ctx, creds); err != nil {
			return nil, fmt.Errorf("configured credentials rejected: %w", err)
		}
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		client:   client,
		auth:     manager,
		sessions: sessions,
		users:    store.NewUsers(api.NewUserGateway(client), notifier, log),
		products: store.NewProducts(api.NewProductGateway(client), notifier, log),
		notifier: notifier,
	}
	a.router = newAppRouter(a)
	return a, nil
}

// newAppRouter registers the guarded destinations. The role requirements
// match the server's own route protections, so a forbidden outcome here
// predicts the 403 the server would have answered.
func newAppRouter(a *app) *nav.Router {
	r := nav.NewRouter(a.sessions, "/login", "/home", a.log)

	r.Handle(nav.Route{Path: "/home", Handler: func(context.Context) error {
		fmt.Println("storefront console — type 'help' for commands")
		return nil
	}})
	r.Handle(nav.Route{Path: "/login", Handler: func(context.Context) error {
		fmt.Println("login required: login <email> <password>")
		return nil
	}})
	r.Handle(nav.Route{
		Path:     "/users",
		Required: []string{domain.RoleAdmin},
		Handler:  func(ctx context.Context) error { return a.renderUsers(ctx) },
	})
	r.Handle(nav.Route{
		Path:     "/products",
		Required: []string{domain.RoleAdmin, domain.RoleUser},
		Handler:  func(ctx context.Context) error { return a.renderProducts(ctx) },
	})
	return r
}

// requireRoles gates a one-shot command the same way a route would.
func (a *app) requireRoles(roles ...string) error {
	switch authz.Decide(a.sessions.Current(), roles) {
	case authz.Allow:
		return nil
	case authz.DenyUnauthenticated:
		return fmt.Errorf("login required: set STORE_USERNAME/STORE_PASSWORD or use the console")
	default:
		return fmt.Errorf("forbidden: this command needs one of %v", roles)
	}
}
