package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/portal-comercial-api/infrastructure/database/postgres"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var importRunColumns = []string{
	"run_id", "status", "file_name", "auxiliary_files", "dry_run", "cleared_previous", "cleared_count",
	"rows_processed", "transactions_created", "duplicates_skipped", "rows_erred",
	"entities_created", "errors", "errors_truncated", "fatal_error", "started_at", "finished_at",
}

type ImportRunRepository interface {
	importing.RunRecorder
	GetRun(ctx context.Context, runID string) (*domain.ImportRunReport, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.ImportRunReport, error)
	DeleteRunsBefore(ctx context.Context, before time.Time) (int64, error)
}

type importRunRepository struct {
	q postgres.Queryer
}

func NewImportRunRepository(q postgres.Queryer) ImportRunRepository {
	return &importRunRepository{q: q}
}

// SaveRun grava ou substitui o resumo da execução. Execução finalizada não é
// sobrescrita por um resumo parcial
func (r *importRunRepository) SaveRun(ctx context.Context, report *domain.ImportRunReport) error {
	entitiesJSON, err := json.Marshal(report.EntitiesCreated)
	if err != nil {
		return fmt.Errorf("erro ao serializar entidades criadas: %w", err)
	}
	errorsJSON, err := json.Marshal(report.Errors)
	if err != nil {
		return fmt.Errorf("erro ao serializar erros: %w", err)
	}

	query, args, err := squirrel.
		Insert(importRunsTable).
		Columns(importRunColumns...).
		Values(
			report.RunID, report.Status, report.FileName, pq.Array(report.AuxiliaryFiles),
			report.DryRun, report.ClearedPrevious, report.ClearedCount,
			report.RowsProcessed, report.TransactionsCreated, report.DuplicatesSkipped, report.RowsErred,
			entitiesJSON, errorsJSON, report.ErrorsTruncated, report.FatalError,
			report.StartedAt, report.FinishedAt,
		).
		SuffixExpr(squirrel.Expr(`
			ON CONFLICT (run_id) DO UPDATE SET
				status = EXCLUDED.status,
				cleared_count = EXCLUDED.cleared_count,
				rows_processed = EXCLUDED.rows_processed,
				transactions_created = EXCLUDED.transactions_created,
				duplicates_skipped = EXCLUDED.duplicates_skipped,
				rows_erred = EXCLUDED.rows_erred,
				entities_created = EXCLUDED.entities_created,
				errors = EXCLUDED.errors,
				errors_truncated = EXCLUDED.errors_truncated,
				fatal_error = EXCLUDED.fatal_error,
				finished_at = EXCLUDED.finished_at
			WHERE ?
		`, squirrel.Or{
			squirrel.NotEq{"import_runs.status": domain.FinalImportRunStatuses},
			squirrel.Eq{"EXCLUDED.status": domain.FinalImportRunStatuses},
		})).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return dbError(err)
	}
	return nil
}

func (r *importRunRepository) GetRun(ctx context.Context, runID string) (*domain.ImportRunReport, error) {
	query, args, err := squirrel.
		Select(importRunColumns...).
		From(importRunsTable).
		Where(squirrel.Eq{"run_id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := r.scanRun(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListRuns devolve as execuções mais recentes primeiro
func (r *importRunRepository) ListRuns(ctx context.Context, limit int) ([]*domain.ImportRunReport, error) {
	builder := squirrel.
		Select(importRunColumns...).
		From(importRunsTable).
		OrderBy("started_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	runs := make([]*domain.ImportRunReport, 0)
	for rows.Next() {
		report, err := r.scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, report)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err)
	}

	return runs, nil
}

func (r *importRunRepository) DeleteRunsBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(importRunsTable).
		Where(squirrel.Lt{"started_at": before}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	return rowsAffected, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *importRunRepository) scanRun(row scanner) (*domain.ImportRunReport, error) {
	report := &domain.ImportRunReport{}
	var (
		auxiliaryFiles pq.StringArray
		entitiesJSON   []byte
		errorsJSON     []byte
		fatalError     sql.NullString
	)

	err := row.Scan(
		&report.RunID,
		&report.Status,
		&report.FileName,
		&auxiliaryFiles,
		&report.DryRun,
		&report.ClearedPrevious,
		&report.ClearedCount,
		&report.RowsProcessed,
		&report.TransactionsCreated,
		&report.DuplicatesSkipped,
		&report.RowsErred,
		&entitiesJSON,
		&errorsJSON,
		&report.ErrorsTruncated,
		&fatalError,
		&report.StartedAt,
		&report.FinishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}

	report.AuxiliaryFiles = auxiliaryFiles
	report.FatalError = fatalError.String

	if len(entitiesJSON) > 0 {
		if err := json.Unmarshal(entitiesJSON, &report.EntitiesCreated); err != nil {
			return nil, fmt.Errorf("erro ao desserializar entidades criadas: %w", err)
		}
	}
	if len(errorsJSON) > 0 {
		if err := json.Unmarshal(errorsJSON, &report.Errors); err != nil {
			return nil, fmt.Errorf("erro ao desserializar erros: %w", err)
		}
	}

	return report, nil
}
