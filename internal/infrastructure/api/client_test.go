package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
	"github.com/storeops/storefront-console/internal/request"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestStatusErrorUsesMessageEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"user with id 9 not found"}`))
	}))

	gateway := NewUserGateway(client)
	_, err := gateway.Get(context.Background(), 9)
	if err == nil {
		t.Fatalf("expected error")
	}

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *domain.APIError, got %T", err)
	}
	if apiErr.Kind != domain.KindClient || apiErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected classification: %+v", apiErr)
	}
	if apiErr.Message != "user with id 9 not found" {
		t.Fatalf("expected the server message, got %q", apiErr.Message)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("404 must match ErrNotFound")
	}
}

func TestServerErrorsAreKindServer(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := NewUserGateway(client).List(context.Background())
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != domain.KindServer {
		t.Fatalf("expected server kind, got %v", err)
	}
}

func TestTransportFailureIsKindNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewClient(Config{BaseURL: url}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	pingErr := client.Ping(context.Background())
	var apiErr *domain.APIError
	if !errors.As(pingErr, &apiErr) || apiErr.Kind != domain.KindNetwork {
		t.Fatalf("expected network kind, got %v", pingErr)
	}
}

func TestPingTreatsAnyStatusAsReachable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("a 401 still proves reachability, got %v", err)
	}
}

func TestSessionCookieSharedAcrossGateways(t *testing.T) {
	var sawCookie bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "storefront-jwt", Value: "opaque", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"email":"admin@store.test","roles":["ROLE_ADMIN"]}`))
	})
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		if c, err := r.Cookie("storefront-jwt"); err == nil && c.Value == "opaque" {
			sawCookie = true
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	client, _ := newTestClient(t, mux)

	_, err := NewAuthGateway(client).Login(context.Background(), ports.Credentials{
		Username: "admin@store.test",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := NewUserGateway(client).List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !sawCookie {
		t.Fatalf("session cookie from login must ride on subsequent requests")
	}
}

func TestRequestIDHeaderForwarded(t *testing.T) {
	var got string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	ctx := request.WithRequestID(context.Background(), "req-123")
	if _, err := NewUserGateway(client).List(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got != "req-123" {
		t.Fatalf("expected forwarded request id, got %q", got)
	}
}
