package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portal-comercial-api/infrastructure/cache"
	"github.com/vfg2006/portal-comercial-api/infrastructure/database/postgres"
	"github.com/vfg2006/portal-comercial-api/infrastructure/repository"
	"github.com/vfg2006/portal-comercial-api/internal/api"
	"github.com/vfg2006/portal-comercial-api/internal/config"
	"github.com/vfg2006/portal-comercial-api/internal/scheduler"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/authenticating"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel, os.Stdout); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup("info", os.Stdout)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	nameCache, closeCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar cache de vendedores")
	}
	defer closeCache()

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar autenticação")
	}

	catalog := repository.NewRepository(pgConn)
	runRepo := repository.NewImportRunRepository(pgConn)
	names := importing.NewSalespersonNames(nameCache, cfg.Cache.TTL())

	importer := importing.NewService(repository.NewUnitOfWork(pgConn), runRepo, names)

	runRetention := scheduler.NewRunRetentionService(runRepo, cfg)
	if err := runRetention.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de execuções")
	} else {
		logrus.Info("Agendador de limpeza de execuções iniciado com sucesso")
	}

	server := api.New(cfg, api.Dependencies{
		Importer:      importer,
		ImportOptions: importOptions(cfg.Import),
		Runs:          runRepo,
		Names:         names,
		Salespeople:   catalog,
		Authenticator: authenticator,
		RunRetention:  runRetention,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func importOptions(c config.Import) importing.Options {
	return importing.Options{
		Workers:            c.Workers,
		ErrorSampleLimit:   c.ErrorSampleLimit,
		ProgressEvery:      c.ProgressEvery,
		DefaultSalesperson: c.DefaultSalesperson,
		MaxFileBytes:       c.MaxFileBytes,
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
