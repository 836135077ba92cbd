package importing

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/pkg/log"
	"github.com/vfg2006/portal-comercial-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Options são os parâmetros de uma execução
type Options struct {
	ClearPrevious      bool
	DryRun             bool
	Workers            int
	ErrorSampleLimit   int
	ProgressEvery      int
	DefaultSalesperson string
	MaxFileBytes       int64
}

// DefaultOptions espelha os padrões de configuração
func DefaultOptions() Options {
	return Options{
		Workers:            1,
		ErrorSampleLimit:   50,
		ProgressEvery:      100,
		DefaultSalesperson: "001",
		MaxFileBytes:       50 * 1024 * 1024,
	}
}

type Source struct {
	Name   string
	Reader io.Reader
}

// Request é o extrato do BI mais as planilhas auxiliares opcionais
type Request struct {
	File          Source
	Products      *Source
	Classes       *Source
	Manufacturers *Source
	Options       Options
}

func (r Request) auxiliaryNames() []string {
	var names []string
	for _, src := range []*Source{r.Products, r.Classes, r.Manufacturers} {
		if src != nil {
			names = append(names, src.Name)
		}
	}
	return names
}

type Importer interface {
	Import(ctx context.Context, req Request) (*domain.ImportRunReport, error)
}

type Service struct {
	uow   UnitOfWork
	runs  RunRecorder
	names *SalespersonNames
	now   func() time.Time
	newID func() (string, error)
}

// NewService cria o importador. runs pode ser nil quando o resumo não é persistido
func NewService(uow UnitOfWork, runs RunRecorder, names *SalespersonNames) *Service {
	return &Service{
		uow:   uow,
		runs:  runs,
		names: names,
		now:   time.Now,
		newID: utils.GenerateID,
	}
}

// Import executa a importação. O relatório é sempre devolvido; o erro só vem
// preenchido quando a execução falha antes de processar as linhas
func (s *Service) Import(ctx context.Context, req Request) (*domain.ImportRunReport, error) {
	opts := req.Options
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	runID, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "gerar id da execução")
	}
	startedAt := s.now()

	report := &domain.ImportRunReport{
		RunID:           runID,
		FileName:        req.File.Name,
		AuxiliaryFiles:  req.auxiliaryNames(),
		DryRun:          opts.DryRun,
		ClearedPrevious: opts.ClearPrevious,
		StartedAt:       startedAt,
	}
	ledger := NewLedger(report, opts.ErrorSampleLimit)

	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx).WithField("file", req.File.Name)

	ledger.Start()
	s.saveRun(ctx, ledger.Snapshot())
	logger.Infof("Importação iniciada (dry_run=%t, limpar=%t, workers=%d)", opts.DryRun, opts.ClearPrevious, opts.Workers)

	table, index, err := s.prepare(req, opts)
	if err == nil && opts.ClearPrevious {
		err = s.clearPrevious(ctx, ledger, opts.DryRun)
	}
	if err != nil {
		logger.WithError(err).Error("Importação abortada antes do processamento das linhas")
		ledger.Fail(err)
		return s.finish(ctx, ledger), err
	}

	products, groups, manufacturers := index.Sizes()
	logger.Infof("%d linhas a processar; auxiliares: %d produtos, %d classes, %d fabricantes",
		table.Len(), products, groups, manufacturers)

	resolver := NewResolver(index, s.names)
	process := func(row Row) {
		processed := s.processRow(ctx, resolver, ledger, row, runID, startedAt, opts)
		if opts.ProgressEvery > 0 && processed%opts.ProgressEvery == 0 {
			logger.Infof("Processadas %d de %d linhas", processed, table.Len())
		}
	}

	if opts.Workers == 1 {
		for row := range table.Rows() {
			process(row)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		for row := range table.Rows() {
			g.Go(func() error {
				process(row)
				return nil
			})
		}
		_ = g.Wait()
	}

	final := s.finish(ctx, ledger)
	logger.WithFields(log.Fields{
		"rows_processed":       final.RowsProcessed,
		"transactions_created": final.TransactionsCreated,
		"duplicates_skipped":   final.DuplicatesSkipped,
		"rows_erred":           final.RowsErred,
	}).Infof("Importação finalizada com status %s", final.Status)

	return final, nil
}

// prepare carrega o extrato, valida o cabeçalho e monta o índice auxiliar
func (s *Service) prepare(req Request, opts Options) (*Table, *ReferenceIndex, error) {
	wb, err := Load(req.File.Name, req.File.Reader, opts.MaxFileBytes)
	if err != nil {
		return nil, nil, err
	}

	if missing := wb.Primary.MissingColumns(RequiredColumns); len(missing) > 0 {
		return nil, nil, newSchemaError(missing)
	}

	var aux [3]*Table
	for i, src := range []*Source{req.Products, req.Classes, req.Manufacturers} {
		if src == nil {
			continue
		}
		auxWb, err := Load(src.Name, src.Reader, opts.MaxFileBytes)
		if err != nil {
			return nil, nil, err
		}
		aux[i] = auxWb.Primary
	}

	if aux[0] == nil && aux[1] == nil && aux[2] == nil && len(wb.Extra) > 0 {
		aux[0], aux[1], aux[2] = DetectAuxiliarySheets(wb.Extra)
	}

	return wb.Primary, NewReferenceIndex(aux[0], aux[1], aux[2]), nil
}

func (s *Service) clearPrevious(ctx context.Context, ledger *Ledger, dryRun bool) error {
	var deleted int64
	err := s.withinUnit(ctx, !dryRun, func(tx Tx) error {
		var err error
		deleted, err = tx.DeleteAllSales(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "limpar vendas anteriores")
	}

	ledger.RecordCleared(deleted)
	log.ForContext(ctx).Infof("%d vendas anteriores removidas", deleted)
	return nil
}

// processRow executa a linha na sua própria unidade de trabalho e só então atualiza o ledger
func (s *Service) processRow(
	ctx context.Context,
	resolver *Resolver,
	ledger *Ledger,
	row Row,
	runID string,
	importedAt time.Time,
	opts Options,
) int {
	parsed, err := parseRow(row, opts.DefaultSalesperson)
	if err != nil {
		return s.rowFailed(ctx, ledger, row.Line, err)
	}

	var (
		ents     *ResolvedEntities
		inserted bool
	)
	err = s.withinUnit(ctx, !opts.DryRun, func(tx Tx) error {
		var err error
		if ents, err = resolver.Resolve(ctx, tx, parsed); err != nil {
			return err
		}

		sale := BuildSale(parsed, ents, runID, importedAt)
		if inserted, err = PersistSale(ctx, tx, sale); err != nil {
			return errors.Wrap(err, "gravar venda")
		}
		return nil
	})
	if err != nil {
		return s.rowFailed(ctx, ledger, row.Line, err)
	}

	if inserted {
		return ledger.RecordCreated(ents.Created)
	}
	log.ForContext(ctx).WithField("line", row.Line).Debug("Venda duplicada ignorada")
	return ledger.RecordDuplicate(ents.Created)
}

func (s *Service) rowFailed(ctx context.Context, ledger *Ledger, line int, err error) int {
	log.ForContext(ctx).WithField("line", line).WithError(err).Warnf("Linha %d rejeitada", line)
	return ledger.RecordError(line, err)
}

// withinUnit garante commit ou rollback em todas as saídas. commit=false sempre desfaz
func (s *Service) withinUnit(ctx context.Context, commit bool, fn func(Tx) error) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "abrir transação")
	}

	done := false
	defer func() {
		if done {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.ForContext(ctx).WithError(rbErr).Error("Falha ao desfazer transação")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if !commit {
		return nil
	}
	err = tx.Commit()
	done = true
	if err != nil {
		return errors.Wrap(err, "confirmar transação")
	}
	return nil
}

func (s *Service) finish(ctx context.Context, ledger *Ledger) *domain.ImportRunReport {
	report := ledger.Finish(s.now())
	s.saveRun(ctx, report)
	return report
}

// saveRun grava o resumo sem interromper a importação em caso de falha
func (s *Service) saveRun(ctx context.Context, report *domain.ImportRunReport) {
	if s.runs == nil {
		return
	}
	if err := s.runs.SaveRun(ctx, report); err != nil {
		log.ForContext(ctx).WithError(err).WithField("status", report.Status).Error("Falha ao salvar resumo da importação")
	}
}
