package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vfg2006/portal-comercial-api/infrastructure/cache"
	"github.com/vfg2006/portal-comercial-api/infrastructure/database/postgres"
	"github.com/vfg2006/portal-comercial-api/infrastructure/repository"
	"github.com/vfg2006/portal-comercial-api/infrastructure/repository/memory"
	"github.com/vfg2006/portal-comercial-api/internal/config"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/pkg/utils"
)

type runFlags struct {
	file          string
	products      string
	classes       string
	manufacturers string
	clear         bool
	dryRun        bool
	workers       int
	jsonOutput    bool
	inMemory      bool
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Importa um extrato do BI (CSV, XLSX ou XLS)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			importer, opts, cleanup, err := f.setup(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			req, closeFiles, err := f.request(opts)
			if err != nil {
				return err
			}
			defer closeFiles()

			report, importErr := importer.Import(ctx, req)
			if report != nil {
				if err := writeReport(cmd.OutOrStdout(), report, f.jsonOutput); err != nil {
					return err
				}
			}
			return importErr
		},
	}

	cmd.Flags().StringVar(&f.file, "file", "", "Extrato do BI (obrigatório)")
	cmd.Flags().StringVar(&f.products, "produtos", "", "Planilha auxiliar de produtos")
	cmd.Flags().StringVar(&f.classes, "classes", "", "Planilha auxiliar de classes")
	cmd.Flags().StringVar(&f.manufacturers, "fabricantes", "", "Planilha auxiliar de fabricantes")
	cmd.Flags().BoolVar(&f.clear, "clear", false, "Apaga as vendas existentes antes de importar")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Processa tudo e desfaz as alterações")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Linhas processadas em paralelo (0 usa IMPORT_WORKERS)")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Imprime o relatório em JSON")
	cmd.Flags().BoolVar(&f.inMemory, "memory", false, "Usa um cadastro em memória (ensaio sem banco)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// setup monta o importador. Com --memory nada é lido do ambiente além dos padrões
func (f runFlags) setup(ctx context.Context) (importing.Importer, importing.Options, func(), error) {
	opts := importing.DefaultOptions()

	if f.inMemory {
		store := memory.New()
		f.apply(&opts)
		return importing.NewService(store, store, importing.NewSalespersonNames(cache.NewMemoryNameCache(), 0)), opts, func() {}, nil
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, opts, nil, err
	}
	opts = importOptions(cfg.Import)
	f.apply(&opts)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, opts, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	nameCache, closeCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		conn.Close()
		return nil, opts, nil, fmt.Errorf("erro ao inicializar cache de vendedores: %w", err)
	}

	names := importing.NewSalespersonNames(nameCache, cfg.Cache.TTL())
	svc := importing.NewService(repository.NewUnitOfWork(conn), repository.NewImportRunRepository(conn), names)

	cleanup := func() {
		_ = closeCache()
		_ = conn.Close()
	}
	return svc, opts, cleanup, nil
}

func (f runFlags) apply(opts *importing.Options) {
	opts.ClearPrevious = f.clear
	opts.DryRun = f.dryRun
	if f.workers > 0 {
		opts.Workers = f.workers
	}
}

func (f runFlags) request(opts importing.Options) (importing.Request, func(), error) {
	var files []*os.File
	closeFiles := func() {
		for _, file := range files {
			file.Close()
		}
	}

	open := func(path string) (*importing.Source, error) {
		if path == "" {
			return nil, nil
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
		}
		files = append(files, file)
		return &importing.Source{Name: filepath.Base(path), Reader: file}, nil
	}

	req := importing.Request{Options: opts}

	primary, err := open(f.file)
	if err != nil {
		closeFiles()
		return req, nil, err
	}
	req.File = *primary

	auxiliary := []struct {
		path   string
		target **importing.Source
	}{
		{f.products, &req.Products},
		{f.classes, &req.Classes},
		{f.manufacturers, &req.Manufacturers},
	}
	for _, aux := range auxiliary {
		if *aux.target, err = open(aux.path); err != nil {
			closeFiles()
			return req, nil, err
		}
	}

	return req, closeFiles, nil
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

func writeReport(w io.Writer, report *domain.ImportRunReport, asJSON bool) error {
	if asJSON {
		_, err := fmt.Fprintln(w, utils.PrettyJson(report))
		return err
	}

	fmt.Fprintf(w, "Execução %s: %s\n", report.RunID, report.Status)
	fmt.Fprintf(w, "Arquivo: %s\n", report.FileName)
	if report.DryRun {
		fmt.Fprintln(w, "Modo ensaio: nenhuma alteração gravada")
	}
	if report.ClearedPrevious {
		fmt.Fprintf(w, "Vendas removidas antes da importação: %d\n", report.ClearedCount)
	}
	fmt.Fprintf(w, "Linhas processadas: %d\n", report.RowsProcessed)
	fmt.Fprintf(w, "Vendas criadas: %d\n", report.TransactionsCreated)
	fmt.Fprintf(w, "Duplicadas ignoradas: %d\n", report.DuplicatesSkipped)
	fmt.Fprintf(w, "Linhas com erro: %d\n", report.RowsErred)
	for _, kind := range domain.EntityKinds {
		fmt.Fprintf(w, "  %s criados: %d\n", kind, report.EntitiesCreated[kind])
	}
	for _, rowErr := range report.Errors {
		fmt.Fprintf(w, "  linha %d: %s\n", rowErr.LineNumber, rowErr.Message)
	}
	if report.ErrorsTruncated {
		fmt.Fprintln(w, "  (lista de erros truncada)")
	}
	if report.FatalError != "" {
		fmt.Fprintf(w, "Erro fatal: %s\n", report.FatalError)
	}
	_, err := fmt.Fprintf(w, "Total de entidades criadas: %d\n", report.TotalEntitiesCreated())
	return err
}
