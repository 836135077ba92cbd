package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portal-comercial-api/internal/api/handler"
	"github.com/vfg2006/portal-comercial-api/internal/api/handler/router"
	"github.com/vfg2006/portal-comercial-api/internal/config"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/authenticating"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	Importer      importing.Importer
	ImportOptions importing.Options
	Runs          handler.RunQuerier
	Names         handler.NameLookup
	Salespeople   importing.SalespersonFinder
	Authenticator authenticating.Authenticator
	RunRetention  handler.RetentionJob
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o roteador com a cadeia de middlewares
func NewHandler(deps Dependencies) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Imports(deps.Importer, deps.ImportOptions, deps.Runs)...),
		router.WithRoutes(handler.Salespeople(deps.Names, deps.Salespeople)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{RunRetention: deps.RunRetention})...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	// importações em andamento terminam antes do desligamento, dentro do timeout
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
