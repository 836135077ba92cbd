package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/portal-comercial-api/infrastructure/cache"
	"github.com/vfg2006/portal-comercial-api/infrastructure/repository/memory"
	"github.com/vfg2006/portal-comercial-api/internal/api"
	"github.com/vfg2006/portal-comercial-api/internal/config"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/internal/scheduler"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/authenticating"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	secret = "segredo-de-teste"
	header = "CLIENTE,CNPJ,ANOMES,VEND,CODVEN,NUMLOJ,PRODUTO,CODPRO,CLASSE,QTD,TOTAL,NF,UF"
	acme   = "ACME LTDA,12345678000199,2401,,5,1,Parafuso,123,Ferragens,10,100.00,555,SP"
)

type testServer struct {
	handler http.Handler
	store   *memory.Store
}

func newTestServer(t *testing.T, maxFileBytes int64) *testServer {
	t.Helper()

	cfg := &config.Config{
		SecretKey: secret,
		RunRetention: config.RunRetention{
			CronSchedule: "0 2 * * *",
			Days:         90,
			Enabled:      true,
		},
	}

	auth, err := authenticating.NewService(cfg)
	require.NoError(t, err)

	store := memory.New()
	names := importing.NewSalespersonNames(cache.NewMemoryNameCache(), time.Minute)

	opts := importing.DefaultOptions()
	if maxFileBytes > 0 {
		opts.MaxFileBytes = maxFileBytes
	}

	return &testServer{
		store: store,
		handler: api.NewHandler(api.Dependencies{
			Importer:      importing.NewService(store, store, names),
			ImportOptions: opts,
			Runs:          store,
			Names:         names,
			Salespeople:   store,
			Authenticator: auth,
			RunRetention:  scheduler.NewRunRetentionService(store, cfg),
		}),
	}
}

func token(t *testing.T, role int) string {
	t.Helper()

	claims := &domain.Claims{
		UserID:     role,
		UserRoleID: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

type upload struct {
	files  map[string][2]string // campo -> nome, conteúdo
	fields map[string]string
}

func (u upload) body(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for field, file := range u.files {
		part, err := mw.CreateFormFile(field, file[0])
		require.NoError(t, err)
		_, err = part.Write([]byte(file[1]))
		require.NoError(t, err)
	}
	for field, value := range u.fields {
		require.NoError(t, mw.WriteField(field, value))
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func (s *testServer) do(t *testing.T, method, path string, role int, up *upload) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if up != nil {
		body, contentType := up.body(t)
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if role != 0 {
		req.Header.Set("Authorization", "Bearer "+token(t, role))
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func csvUpload(content string, fields map[string]string) *upload {
	return &upload{
		files:  map[string][2]string{"arquivo": {"bi.csv", content}},
		fields: fields,
	}
}

func decodeReport(t *testing.T, body []byte) domain.ImportRunReport {
	t.Helper()
	var report domain.ImportRunReport
	require.NoError(t, json.Unmarshal(body, &report))
	return report
}

func decodeError(t *testing.T, body []byte) (apiErrors.APIError, domain.ImportRunReport) {
	t.Helper()

	var envelope struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details domain.ImportRunReport `json:"details"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return apiErrors.APIError{Code: envelope.Code, Message: envelope.Message}, envelope.Details
}

func TestHealthcheck(t *testing.T) {
	srv := newTestServer(t, 0)

	rec := srv.do(t, http.MethodGet, "/healthcheck", 0, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestImportFlow(t *testing.T) {
	srv := newTestServer(t, 0)

	rec := srv.do(t, http.MethodPost, "/v1/imports", domain.RoleGestor,
		csvUpload(header+"\n"+acme+"\n", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	report := decodeReport(t, rec.Body.Bytes())
	assert.Equal(t, domain.ImportRunCompleted, report.Status)
	assert.Equal(t, 1, report.TransactionsCreated)
	assert.Equal(t, "bi.csv", report.FileName)
	assert.Len(t, srv.store.Snapshot().Sales, 1)

	t.Run("reimportação não duplica", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/v1/imports", domain.RoleAdmin,
			csvUpload(header+"\n"+acme+"\n", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, decodeReport(t, rec.Body.Bytes()).DuplicatesSkipped)
	})

	t.Run("listagem", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/v1/imports?limit=1", domain.RoleGestor, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var runs []domain.ImportRunReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
		assert.Len(t, runs, 1)
	})

	t.Run("limit inválido", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/v1/imports?limit=zero", domain.RoleGestor, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("consulta por id", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/v1/imports/"+report.RunID, domain.RoleGestor, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, report.RunID, decodeReport(t, rec.Body.Bytes()).RunID)

		rec = srv.do(t, http.MethodGet, "/v1/imports/inexistente", domain.RoleGestor, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("nome do vendedor", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/v1/salespeople/5", domain.RoleVendedor, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"code":"005","name":"`+domain.DefaultSalespersonName+`"}`, rec.Body.String())

		rec = srv.do(t, http.MethodGet, "/v1/salespeople/999", domain.RoleVendedor, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = srv.do(t, http.MethodGet, "/v1/salespeople/1234", domain.RoleVendedor, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestImportFile_Erros(t *testing.T) {
	tests := []struct {
		name       string
		role       int
		upload     *upload
		maxBytes   int64
		wantStatus int
		wantCode   string
		wantReport bool
	}{
		{
			name:       "sem arquivo",
			role:       domain.RoleGestor,
			upload:     &upload{fields: map[string]string{"dry_run": "true"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "flag não booleana",
			role:       domain.RoleGestor,
			upload:     csvUpload(header+"\n"+acme+"\n", map[string]string{"limpar_registros_anteriores": "talvez"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "extensão não suportada",
			role: domain.RoleGestor,
			upload: &upload{files: map[string][2]string{
				"arquivo": {"bi.txt", header + "\n" + acme + "\n"},
			}},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrImportFileFormat,
			wantReport: true,
		},
		{
			name:       "coluna obrigatória ausente",
			role:       domain.RoleAdmin,
			upload:     csvUpload(strings.Replace(header, ",TOTAL", "", 1)+"\n", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrImportSchema,
			wantReport: true,
		},
		{
			name:       "arquivo acima do limite",
			role:       domain.RoleGestor,
			upload:     csvUpload(header+"\n"+strings.Repeat(acme+"\n", 20000), nil),
			maxBytes:   10,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   apiErrors.ErrPayloadTooLarge,
		},
		{
			name:       "vendedor sem permissão",
			role:       domain.RoleVendedor,
			upload:     csvUpload(header+"\n"+acme+"\n", nil),
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "sem token",
			upload:     csvUpload(header+"\n"+acme+"\n", nil),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.maxBytes)

			rec := srv.do(t, http.MethodPost, "/v1/imports", tt.role, tt.upload)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			apiErr, report := decodeError(t, rec.Body.Bytes())
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantReport {
				assert.Equal(t, domain.ImportRunFailed, report.Status)
				assert.NotEmpty(t, report.FatalError)
			}
			assert.Empty(t, srv.store.Snapshot().Sales)
		})
	}
}

func TestImportFile_DryRunComAuxiliares(t *testing.T) {
	srv := newTestServer(t, 0)

	up := csvUpload(header+"\n"+acme+"\n", map[string]string{"dry_run": "true"})
	up.files["classes"] = [2]string{"classes.csv", "CODCLA,DESCR\n1,FERRAGENS EM GERAL\n"}

	rec := srv.do(t, http.MethodPost, "/v1/imports", domain.RoleGestor, up)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	report := decodeReport(t, rec.Body.Bytes())
	assert.True(t, report.DryRun)
	assert.Equal(t, []string{"classes.csv"}, report.AuxiliaryFiles)
	assert.Equal(t, 1, report.TransactionsCreated)
	assert.Empty(t, srv.store.Snapshot().Sales)
}

func TestCronJobs(t *testing.T) {
	srv := newTestServer(t, 0)

	rec := srv.do(t, http.MethodPost, "/v1/cron/run-retention/run", domain.RoleGestor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/cron/run-retention/run", domain.RoleAdmin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"type":"run-retention","deleted":0}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/v1/cron/desconhecido/run", domain.RoleAdmin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/cron/status", domain.RoleGestor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"run-retention"`)
}

func TestRotaInexistente(t *testing.T) {
	srv := newTestServer(t, 0)

	rec := srv.do(t, http.MethodGet, "/v1/nada", domain.RoleAdmin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/v1/imports", domain.RoleAdmin, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
