package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/ports"
)

// Bootstrap attempts to resolve an existing server-side session with a
// one-shot "who am I" probe. On success the identity is logged in; on any
// failure the store stays anonymous. Failure is not surfaced anywhere beyond
// a debug log line, because "not logged in" is a normal state, not an error.
func Bootstrap(ctx context.Context, gateway ports.AuthGateway, store *Store, log zerolog.Logger) {
	identity, err := gateway.CurrentUser(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("session probe resolved anonymous")
		return
	}
	store.Login(identity)
	log.Debug().Str("email", identity.Email).Msg("session restored")
}
