package importing

import (
	"context"
	"time"

	"github.com/vfg2006/portal-comercial-api/pkg/log"
)

// SalespersonNames é o cache de leitura dos nomes de vendedor.
// Quem altera o vendedor invalida a entrada na mesma chamada
type SalespersonNames struct {
	cache NameCache
	ttl   time.Duration
}

func NewSalespersonNames(cache NameCache, ttl time.Duration) *SalespersonNames {
	return &SalespersonNames{cache: cache, ttl: ttl}
}

// Lookup devolve "" quando o vendedor não existe. Falhas do cache caem para o cadastro
func (n *SalespersonNames) Lookup(ctx context.Context, store SalespersonFinder, code string) (string, error) {
	if n != nil && n.cache != nil {
		name, ok, err := n.cache.Get(ctx, code)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warnf("Falha ao ler cache do vendedor %s", code)
		} else if ok {
			return name, nil
		}
	}

	salesperson, err := store.FindSalesperson(ctx, code)
	if err != nil {
		return "", err
	}
	if salesperson == nil {
		return "", nil
	}

	if n != nil && n.cache != nil {
		if err := n.cache.Set(ctx, code, salesperson.Name, n.ttl); err != nil {
			log.ForContext(ctx).WithError(err).Warnf("Falha ao gravar cache do vendedor %s", code)
		}
	}

	return salesperson.Name, nil
}

func (n *SalespersonNames) Invalidate(ctx context.Context, code string) {
	if n == nil || n.cache == nil {
		return
	}
	if err := n.cache.Delete(ctx, code); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("Falha ao invalidar cache do vendedor %s", code)
	}
}
