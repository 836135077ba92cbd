package importing

import (
	"fmt"

	"github.com/pkg/errors"
)

// Categorias de erro da importação
var (
	// Fatais: abortam a execução antes de qualquer linha
	ErrFileFormat = errors.New("formato de arquivo inválido")
	ErrSchema     = errors.New("colunas obrigatórias ausentes")

	// Locais: a linha é descartada e a execução continua
	ErrRowValidation    = errors.New("linha inválida")
	ErrEntityResolution = errors.New("falha ao resolver entidade")
)

// ImportError carrega a linha e a coluna que originaram o erro
type ImportError struct {
	Err     error  // Categoria
	Line    int    // Linha da planilha (cabeçalho = 1)
	Column  string // Coluna envolvida (quando aplicável)
	Details string
	Cause   error
}

func (e *ImportError) Error() string {
	msg := e.Err.Error()
	if e.Column != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Column)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap expõe a categoria e a causa para errors.Is
func (e *ImportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newFileFormatError(details string, cause error) *ImportError {
	return &ImportError{Err: ErrFileFormat, Details: details, Cause: cause}
}

func newSchemaError(missing []string) *ImportError {
	return &ImportError{Err: ErrSchema, Details: fmt.Sprintf("%v", missing)}
}

func newRowError(line int, column, details string) *ImportError {
	return &ImportError{Err: ErrRowValidation, Line: line, Column: column, Details: details}
}

func newResolutionError(line int, column, details string, cause error) *ImportError {
	return &ImportError{Err: ErrEntityResolution, Line: line, Column: column, Details: details, Cause: cause}
}

// IsFatal indica erro que aborta a execução inteira
func IsFatal(err error) bool {
	return errors.Is(err, ErrFileFormat) || errors.Is(err, ErrSchema)
}

// IsRowLocal indica erro restrito a uma linha
func IsRowLocal(err error) bool {
	return errors.Is(err, ErrRowValidation) || errors.Is(err, ErrEntityResolution)
}
