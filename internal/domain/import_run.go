package domain

import (
	"slices"
	"time"
)

type ImportRunStatus string

const (
	ImportRunPending             ImportRunStatus = "pending"
	ImportRunRunning             ImportRunStatus = "running"
	ImportRunCompleted           ImportRunStatus = "completed"
	ImportRunCompletedWithErrors ImportRunStatus = "completed_with_errors"
	ImportRunFailed              ImportRunStatus = "failed"
)

// FinalImportRunStatuses são os estados em que a execução não muda mais
var FinalImportRunStatuses = []ImportRunStatus{ImportRunCompleted, ImportRunCompletedWithErrors, ImportRunFailed}

func (s ImportRunStatus) IsFinal() bool {
	return slices.Contains(FinalImportRunStatuses, s)
}

type RowError struct {
	LineNumber int    `json:"line_number"`
	Message    string `json:"message"`
}

// ImportRunReport é o resumo de uma execução de importação
type ImportRunReport struct {
	RunID               string             `json:"run_id"`
	Status              ImportRunStatus    `json:"status"`
	FileName            string             `json:"file_name"`
	AuxiliaryFiles      []string           `json:"auxiliary_files,omitempty"`
	DryRun              bool               `json:"dry_run"`
	ClearedPrevious     bool               `json:"cleared_previous"`
	ClearedCount        int64              `json:"cleared_count"`
	RowsProcessed       int                `json:"rows_processed"`
	TransactionsCreated int                `json:"transactions_created"`
	DuplicatesSkipped   int                `json:"duplicates_skipped"`
	RowsErred           int                `json:"rows_erred"`
	EntitiesCreated     map[EntityKind]int `json:"entities_created"`
	Errors              []RowError         `json:"errors"`
	ErrorsTruncated     bool               `json:"errors_truncated"`
	FatalError          string             `json:"fatal_error,omitempty"`
	StartedAt           time.Time          `json:"started_at"`
	FinishedAt          *time.Time         `json:"finished_at,omitempty"`
}

// Succeeded retorna as linhas que terminaram sem erro (criadas ou duplicadas)
func (r *ImportRunReport) Succeeded() int {
	return r.TransactionsCreated + r.DuplicatesSkipped
}

func (r *ImportRunReport) TotalEntitiesCreated() int {
	total := 0
	for _, n := range r.EntitiesCreated {
		total += n
	}
	return total
}
