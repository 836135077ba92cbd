package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/pkg/apiErrors"
	"github.com/vfg2006/portal-comercial-api/pkg/log"
)

// NameLookup é satisfeito por importing.SalespersonNames
type NameLookup interface {
	Lookup(ctx context.Context, store importing.SalespersonFinder, code string) (string, error)
}

type salespersonResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GetSalespersonName resolve o nome do vendedor pelo cache de leitura
func GetSalespersonName(names NameLookup, finder importing.SalespersonFinder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("code")

		code, err := importing.NormalizeCode(raw, domain.SalespersonCodeWidth)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Código de vendedor inválido", nil)
			return
		}

		name, err := names.Lookup(r.Context(), finder, code)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Errorf("Erro ao buscar vendedor %s", code)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendedor", nil)
			return
		}
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Vendedor não encontrado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, salespersonResponse{Code: code, Name: name})
	})
}
