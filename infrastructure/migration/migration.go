// Package migration aplica o schema do banco embutido no binário
package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/portal-comercial-api/pkg/log"
)

//go:embed schema.sql
var schema string

// Transactor é satisfeito por postgres.Connection
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Statements separa o schema em comandos. Todos são idempotentes (IF NOT EXISTS)
func Statements() []string {
	var statements []string
	for _, stmt := range strings.Split(schema, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// Apply executa o schema inteiro em uma única transação
func Apply(ctx context.Context, conn Transactor) error {
	logger := log.ForContext(ctx)
	statements := Statements()
	startTime := time.Now()

	logger.Infof("Aplicando schema (%d comandos)...", len(statements))

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("comando %d/%d: %w", i+1, len(statements), err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	logger.Infof("Schema aplicado em %v", time.Since(startTime))
	return nil
}
