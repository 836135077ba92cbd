// Package cache guarda os nomes de vendedor consultados pelo importador e pela API
package cache

import (
	"context"
	"fmt"

	"github.com/vfg2006/portal-comercial-api/internal/config"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
)

const salespersonKeyPrefix = "vendedor:nome:"

// New escolhe o backend pelo CACHE_DRIVER. closeFn libera a conexão com o Redis
func New(ctx context.Context, cfg config.Cache) (cache importing.NameCache, closeFn func() error, err error) {
	switch cfg.Driver {
	case "redis":
		client, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisNameCache(client), client.Close, nil
	case "memory", "":
		return NewMemoryNameCache(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("cache: driver desconhecido %q", cfg.Driver)
	}
}
