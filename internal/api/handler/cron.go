package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portal-comercial-api/pkg/apiErrors"
	"github.com/vfg2006/portal-comercial-api/pkg/log"
)

const CronJobTypeRunRetention = "run-retention"

// RetentionJob é satisfeito por scheduler.RunRetentionService
type RetentionJob interface {
	Purge(ctx context.Context) (int64, error)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	RunRetention RetentionJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeRunRetention:
			if services.RunRetention == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de execuções não disponível", nil)
				return
			}

			deleted, err := services.RunRetention.Purge(r.Context())
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Erro na limpeza manual de execuções")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro na limpeza de execuções", nil)
				return
			}

			writeJSON(w, r, http.StatusOK, map[string]any{"type": cronType, "deleted": deleted})

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido: "+cronType, nil)
		}
	})
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.RunRetention != nil {
			status[CronJobTypeRunRetention] = services.RunRetention.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	})
}
