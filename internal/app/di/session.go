package di

import (
	"tradefolio_backend/internal/feature/auth/usecase"
	"tradefolio_backend/internal/platform/session"

	"github.com/redis/go-redis/v9"
)

// NewSessionStore creates the token revocation store. Without Redis it
// returns nil and logout degrades to clearing the cookie; tokens then
// simply age out at their expiry.
func NewSessionStore(rdb *redis.Client) usecase.SessionStore {
	if rdb == nil {
		return nil
	}
	return session.NewTokenStore(rdb, "revoked")
}
