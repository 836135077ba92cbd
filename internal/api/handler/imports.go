package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/pkg/apiErrors"
	"github.com/vfg2006/portal-comercial-api/pkg/log"
	"github.com/vfg2006/portal-comercial-api/pkg/middleware"
)

const (
	formPrimaryFile   = "arquivo"
	formProducts      = "produtos"
	formClasses       = "classes"
	formManufacturers = "fabricantes"
	formClearPrevious = "limpar_registros_anteriores"
	formDryRun        = "dry_run"

	defaultRunsLimit = 20
	maxRunsLimit     = 200

	// memória usada pelo ParseMultipartForm antes de ir para disco
	multipartMemory = 32 << 20
)

// RunQuerier consulta os resumos persistidos
type RunQuerier interface {
	GetRun(ctx context.Context, runID string) (*domain.ImportRunReport, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.ImportRunReport, error)
}

// ImportFile recebe o extrato do BI e as planilhas auxiliares e executa a importação.
// A execução não é cancelada se o cliente desconectar
func ImportFile(importer importing.Importer, base importing.Options) http.Handler {
	// extrato + três auxiliares, com folga para os campos do formulário
	maxRequestBytes := 4*base.MaxFileBytes + 1<<20

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if r.ContentLength > maxRequestBytes {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite permitido", nil)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite permitido", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		opts := base
		var err error
		if opts.ClearPrevious, err = formBool(r, formClearPrevious); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campo "+formClearPrevious+" deve ser booleano", nil)
			return
		}
		if opts.DryRun, err = formBool(r, formDryRun); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campo "+formDryRun+" deve ser booleano", nil)
			return
		}

		var opened []multipart.File
		defer func() {
			for _, f := range opened {
				f.Close()
			}
		}()

		primary, err := formSource(r, formPrimaryFile, &opened)
		if err != nil {
			writeInternalError(w, r, err, "Erro ao ler arquivo enviado")
			return
		}
		if primary == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo do BI é obrigatório (campo "+formPrimaryFile+")", nil)
			return
		}

		req := importing.Request{File: *primary, Options: opts}
		for field, target := range map[string]**importing.Source{
			formProducts:      &req.Products,
			formClasses:       &req.Classes,
			formManufacturers: &req.Manufacturers,
		} {
			if *target, err = formSource(r, field, &opened); err != nil {
				writeInternalError(w, r, err, "Erro ao ler planilha auxiliar")
				return
			}
		}

		if claims, ok := middleware.UserFromContext(r.Context()); ok {
			logger = logger.WithField("user_id", claims.UserID)
		}
		logger.Infof("Importação solicitada: %s", primary.Name)

		report, err := importer.Import(context.WithoutCancel(r.Context()), req)
		if err != nil {
			writeImportError(w, r, report, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func writeImportError(w http.ResponseWriter, r *http.Request, report *domain.ImportRunReport, err error) {
	switch {
	case errors.Is(err, importing.ErrSchema):
		apiErrors.WriteError(w, apiErrors.ErrImportSchema, err.Error(), report)
	case errors.Is(err, importing.ErrFileFormat):
		apiErrors.WriteError(w, apiErrors.ErrImportFileFormat, err.Error(), report)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao executar importação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar importação", report)
	}
}

func formBool(r *http.Request, field string) (bool, error) {
	value := r.FormValue(field)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

// formSource devolve nil quando o campo não foi enviado. O arquivo aberto
// entra em opened para ser fechado ao fim da requisição
func formSource(r *http.Request, field string, opened *[]multipart.File) (*importing.Source, error) {
	file, fileHeader, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	*opened = append(*opened, file)
	return &importing.Source{Name: fileHeader.Filename, Reader: file}, nil
}

func ListImports(runs RunQuerier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(n, maxRunsLimit)
		}

		list, err := runs.ListRuns(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}
		if list == nil {
			list = []*domain.ImportRunReport{}
		}

		writeJSON(w, r, http.StatusOK, list)
	})
}

func GetImport(runs RunQuerier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := runs.GetRun(r.Context(), runID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Errorf("Erro ao buscar execução %s", runID)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execução", nil)
			return
		}
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Execução não encontrada", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
