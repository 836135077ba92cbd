package importing

import (
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

// Ledger acumula o resultado de cada linha. É seguro para uso concorrente
type Ledger struct {
	mu         sync.Mutex
	report     *domain.ImportRunReport
	errorLimit int
}

func NewLedger(report *domain.ImportRunReport, errorLimit int) *Ledger {
	if report.EntitiesCreated == nil {
		report.EntitiesCreated = make(map[domain.EntityKind]int, len(domain.EntityKinds))
	}
	if report.Errors == nil {
		report.Errors = []domain.RowError{}
	}
	report.Status = domain.ImportRunPending
	return &Ledger{report: report, errorLimit: errorLimit}
}

func (l *Ledger) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.report.Status = domain.ImportRunRunning
}

// Snapshot copia o relatório parcial para ser gravado enquanto as linhas rodam
func (l *Ledger) Snapshot() *domain.ImportRunReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := *l.report
	snap.AuxiliaryFiles = slices.Clone(l.report.AuxiliaryFiles)
	snap.EntitiesCreated = maps.Clone(l.report.EntitiesCreated)
	snap.Errors = slices.Clone(l.report.Errors)
	return &snap
}

func (l *Ledger) RecordCleared(n int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.report.ClearedCount = n
}

// RecordCreated registra venda criada e devolve o total de linhas processadas
func (l *Ledger) RecordCreated(entities []domain.EntityKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.report.TransactionsCreated++
	l.countEntities(entities)
	l.report.RowsProcessed++
	return l.report.RowsProcessed
}

func (l *Ledger) RecordDuplicate(entities []domain.EntityKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.report.DuplicatesSkipped++
	l.countEntities(entities)
	l.report.RowsProcessed++
	return l.report.RowsProcessed
}

// RecordError conta toda linha com erro. A amostra guarda as linhas de menor número
func (l *Ledger) RecordError(line int, err error) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.report.RowsErred++
	l.report.RowsProcessed++

	entry := domain.RowError{LineNumber: line, Message: err.Error()}
	switch {
	case l.errorLimit <= 0 || len(l.report.Errors) < l.errorLimit:
		l.report.Errors = append(l.report.Errors, entry)
	default:
		l.report.ErrorsTruncated = true
		worst := 0
		for i, e := range l.report.Errors {
			if e.LineNumber > l.report.Errors[worst].LineNumber {
				worst = i
			}
		}
		if line < l.report.Errors[worst].LineNumber {
			l.report.Errors[worst] = entry
		}
	}

	return l.report.RowsProcessed
}

func (l *Ledger) countEntities(entities []domain.EntityKind) {
	for _, kind := range entities {
		l.report.EntitiesCreated[kind]++
	}
}

// Fail marca erro fatal. Nenhuma linha é processada depois disso
func (l *Ledger) Fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.report.FatalError = err.Error()
	l.report.Status = domain.ImportRunFailed
}

// Finish fecha a execução e devolve o relatório final
func (l *Ledger) Finish(now time.Time) *domain.ImportRunReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.report.Status == domain.ImportRunFailed:
	case l.report.RowsErred > 0:
		l.report.Status = domain.ImportRunCompletedWithErrors
	default:
		l.report.Status = domain.ImportRunCompleted
	}

	sort.Slice(l.report.Errors, func(i, j int) bool {
		return l.report.Errors[i].LineNumber < l.report.Errors[j].LineNumber
	})
	l.report.FinishedAt = &now

	return l.report
}
