package memcache_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fitcore/internal/infra"
	mem "fitcore/pkg/memcache"
)

var Module = fx.Provide(provideResetTokenStore)

// provideResetTokenStore prefers redis; when no redis is reachable the
// in-process store keeps password resets working on a single node.
func provideResetTokenStore(logger *zap.Logger) mem.ResetTokenStore {
	if client := infra.NewRedisClient(); client != nil {
		return mem.NewRedisResetTokens(client)
	}
	logger.Warn("redis unavailable, using in-memory reset token store")
	return mem.NewMemoryResetTokens()
}
