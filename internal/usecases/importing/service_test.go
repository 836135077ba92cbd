package importing_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/portal-comercial-api/infrastructure/repository/memory"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing/mocks"
)

const (
	header   = "CLIENTE,CNPJ,ANOMES,VEND,CODVEN,NUMLOJ,PRODUTO,CODPRO,CLASSE,QTD,TOTAL,NF,UF"
	acmeLine = "ACME LTDA,12345678000199,2401,,5,1,Parafuso,123,Ferragens,10,100.00,555,SP"
)

func extract(lines ...string) string {
	return header + "\n" + strings.Join(lines, "\n") + "\n"
}

func runImport(t *testing.T, svc *importing.Service, content string, mutate func(*importing.Request)) (*domain.ImportRunReport, error) {
	t.Helper()

	req := importing.Request{
		File:    importing.Source{Name: "bi.csv", Reader: strings.NewReader(content)},
		Options: importing.DefaultOptions(),
	}
	if mutate != nil {
		mutate(&req)
	}
	return svc.Import(context.Background(), req)
}

func TestImportCenarioCompleto(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := runImport(t, svc, extract(acmeLine), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ImportRunCompleted, report.Status)
	assert.Equal(t, 1, report.Succeeded())
	assert.Equal(t, 1, report.RowsProcessed)
	assert.Equal(t, 1, report.TransactionsCreated)
	assert.Zero(t, report.DuplicatesSkipped)
	assert.Zero(t, report.RowsErred)
	for _, kind := range domain.EntityKinds {
		assert.Equal(t, 1, report.EntitiesCreated[kind], kind)
	}

	snap := store.Snapshot()

	require.Len(t, snap.Stores, 1)
	assert.Equal(t, domain.Store{Code: "001", Name: "Loja 001", Active: true}, snap.Stores[0])

	require.Len(t, snap.Salespeople, 1)
	assert.Equal(t, "005", snap.Salespeople[0].Code)
	assert.Equal(t, domain.DefaultSalespersonName, snap.Salespeople[0].Name)
	require.NotNil(t, snap.Salespeople[0].StoreCode)
	assert.Equal(t, "001", *snap.Salespeople[0].StoreCode)

	require.Len(t, snap.Products, 1)
	assert.Equal(t, domain.Product{
		Code: "000123", Description: "Parafuso", GroupCode: "0001", ManufacturerCode: "001", Active: true,
	}, snap.Products[0])
	require.Len(t, snap.Groups, 1)
	assert.Equal(t, domain.DefaultGroupDescription, snap.Groups[0].Description)
	require.Len(t, snap.Manufacturers, 1)
	assert.Equal(t, domain.DefaultManufacturerDescription, snap.Manufacturers[0].Description)

	require.Len(t, snap.Clients, 1)
	client := snap.Clients[0]
	assert.Equal(t, "1234567800", client.Code)
	assert.Equal(t, "ACME LTDA", client.Name)
	assert.Equal(t, domain.ClientStatusDraft, client.Status)
	require.NotNil(t, client.TaxID)
	assert.Equal(t, "12345678000199", *client.TaxID)
	assert.Equal(t, domain.TaxIDKindCNPJ, *client.TaxIDKind)
	assert.True(t, client.IsPrincipal())

	require.Len(t, snap.Sales, 1)
	sale := snap.Sales[0]
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), sale.SaleDate)
	assert.Equal(t, "2024", sale.Year)
	assert.Equal(t, "01", sale.Month)
	assert.Equal(t, "202401", sale.YearMonth)
	assert.True(t, decimal.NewFromInt(10).Equal(sale.Quantity))
	assert.True(t, decimal.NewFromInt(100).Equal(sale.TotalValue))
	assert.Equal(t, "555", sale.InvoiceNumber)
	assert.Equal(t, "005", sale.SalespersonCode)
	assert.Equal(t, "0001", sale.GroupCode)
	assert.Equal(t, domain.OriginSystemBI, sale.OriginSystem)
	assert.Equal(t, report.RunID, sale.RunID)
	require.NotNil(t, sale.State)
	assert.Equal(t, "SP", *sale.State)

	saved, err := store.GetRun(context.Background(), report.RunID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, domain.ImportRunCompleted, saved.Status)
}

func TestImportIdempotente(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)
	content := extract(
		acmeLine,
		"ACME LTDA,12345678000199,2401,,5,1,Porca,124,Ferragens,5,20.00,555,SP",
	)

	first, err := runImport(t, svc, content, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, first.TransactionsCreated)

	second, err := runImport(t, svc, content, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportRunCompleted, second.Status)
	assert.Zero(t, second.TransactionsCreated)
	assert.Equal(t, 2, second.DuplicatesSkipped)
	assert.Zero(t, second.TotalEntitiesCreated())
	assert.Len(t, store.Snapshot().Sales, 2)
}

func TestImportDuplicadaNoMesmoArquivo(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := runImport(t, svc, extract(acmeLine, acmeLine), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TransactionsCreated)
	assert.Equal(t, 1, report.DuplicatesSkipped)
	assert.Equal(t, 2, report.RowsProcessed)
	assert.Len(t, store.Snapshot().Sales, 1)
}

func TestImportIsolaLinhaInvalida(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := runImport(t, svc, extract(
		acmeLine,
		"ACME LTDA,12345678000199,2401,,5,1,Porca,124,Ferragens,abc,20.00,556,SP",
		"ACME LTDA,12345678000199,2402,,5,1,Porca,124,Ferragens,2,20.00,557,SP",
		"ACME LTDA,12345678000199,2402,,5,1,Porca,124,Ferragens,,20.00,558,SP",
	), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ImportRunCompletedWithErrors, report.Status)
	assert.Equal(t, 4, report.RowsProcessed)
	assert.Equal(t, 2, report.TransactionsCreated)
	assert.Equal(t, 2, report.RowsErred)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 3, report.Errors[0].LineNumber)
	assert.Contains(t, report.Errors[0].Message, importing.ColQuantity)
	assert.Equal(t, 5, report.Errors[1].LineNumber)
	assert.Len(t, store.Snapshot().Sales, 2)
}

func TestImportPeriodoInvalidoNaoUsaDataPadrao(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := runImport(t, svc, extract(
		"ACME LTDA,12345678000199,abcd,,5,1,Parafuso,123,Ferragens,10,100.00,555,SP",
	), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.RowsErred)
	assert.Empty(t, store.Snapshot().Sales)
	assert.Empty(t, store.Snapshot().Clients, "a linha é validada antes de criar entidades")
}

func TestImportErrosFatais(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		category error
	}{
		{
			name:     "coluna TOTAL ausente",
			file:     "bi.csv",
			content:  strings.Replace(header, ",TOTAL", "", 1) + "\nACME,12345678000199,2401,,5,1,P,123,C,10,555,SP\n",
			category: importing.ErrSchema,
		},
		{
			name:     "extensão não suportada",
			file:     "bi.txt",
			content:  extract(acmeLine),
			category: importing.ErrFileFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			svc := importing.NewService(store, store, nil)

			report, err := runImport(t, svc, tt.content, func(r *importing.Request) {
				r.File.Name = tt.file
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.category))
			assert.True(t, importing.IsFatal(err))

			require.NotNil(t, report)
			assert.Equal(t, domain.ImportRunFailed, report.Status)
			assert.NotEmpty(t, report.FatalError)
			assert.Zero(t, report.RowsProcessed)
			assert.Zero(t, report.TotalEntitiesCreated())

			snap := store.Snapshot()
			assert.Empty(t, snap.Clients)
			assert.Empty(t, snap.Sales)

			saved, err := store.GetRun(context.Background(), report.RunID)
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, domain.ImportRunFailed, saved.Status)
		})
	}
}

func TestImportDryRun(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := runImport(t, svc, extract(acmeLine), func(r *importing.Request) {
		r.Options.DryRun = true
	})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.TransactionsCreated)
	assert.Equal(t, 1, report.EntitiesCreated[domain.EntityClient])

	snap := store.Snapshot()
	assert.Empty(t, snap.Sales)
	assert.Empty(t, snap.Clients)
	assert.Empty(t, snap.Stores)
}

func TestImportLimpaVendasAnteriores(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	_, err := runImport(t, svc, extract(acmeLine, "ACME LTDA,12345678000199,2401,,5,1,Porca,124,Ferragens,5,20.00,555,SP"), nil)
	require.NoError(t, err)

	t.Run("dry run não apaga", func(t *testing.T) {
		report, err := runImport(t, svc, extract(acmeLine), func(r *importing.Request) {
			r.Options.ClearPrevious = true
			r.Options.DryRun = true
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), report.ClearedCount)
		assert.Len(t, store.Snapshot().Sales, 2)
	})

	t.Run("apaga antes de importar", func(t *testing.T) {
		report, err := runImport(t, svc, extract(acmeLine), func(r *importing.Request) {
			r.Options.ClearPrevious = true
		})
		require.NoError(t, err)
		assert.True(t, report.ClearedPrevious)
		assert.Equal(t, int64(2), report.ClearedCount)
		assert.Equal(t, 1, report.TransactionsCreated)

		snap := store.Snapshot()
		require.Len(t, snap.Sales, 1)
		assert.Equal(t, "000123", snap.Sales[0].ProductCode)
		assert.Len(t, snap.Clients, 1, "limpar não remove cadastros")
	})
}

func TestImportFilialESemDocumento(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := runImport(t, svc, extract(
		acmeLine,
		"ACME FILIAL,12345678000270,2401,,5,1,Parafuso,123,Ferragens,1,10.00,600,RJ",
		"José da Silva,,2401,MARIA,7,2,Parafuso,123,Ferragens,1,10.00,601,MG",
		"JOSÉ DA SILVA,,2401,MARIA,7,2,Parafuso,123,Ferragens,1,10.00,602,MG",
	), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportRunCompleted, report.Status)
	assert.Equal(t, 3, report.EntitiesCreated[domain.EntityClient])

	clients := map[string]domain.Client{}
	for _, c := range store.Snapshot().Clients {
		clients[c.Code] = c
	}
	require.Len(t, clients, 3)

	branch, ok := clients["1234567800-2"]
	require.True(t, ok)
	require.NotNil(t, branch.MasterCode)
	assert.Equal(t, "1234567800", *branch.MasterCode)
	assert.NotEqual(t, branch.Code, *branch.MasterCode)

	synthetic, ok := clients["NJDS000001"]
	require.True(t, ok)
	assert.Nil(t, synthetic.TaxID)
	require.NotNil(t, synthetic.SalespersonName)
	assert.Equal(t, "MARIA", *synthetic.SalespersonName)
}

func TestImportRenomeiaVendedorPadrao(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	_, err := runImport(t, svc, extract(acmeLine), nil)
	require.NoError(t, err)

	_, err = runImport(t, svc, extract(
		"ACME LTDA,12345678000199,2402,CARLOS,5,1,Parafuso,123,Ferragens,10,100.00,900,SP",
	), nil)
	require.NoError(t, err)

	sp, err := store.FindSalesperson(context.Background(), "005")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "CARLOS", sp.Name)
}

func TestImportComPlanilhasAuxiliares(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := runImport(t, svc, extract(acmeLine), func(r *importing.Request) {
		r.Products = &importing.Source{Name: "produtos.csv", Reader: strings.NewReader("CODPRO,CODCLA,CODFAB,DESCR\n123,12,7,PARAFUSO SEXTAVADO\n")}
		r.Classes = &importing.Source{Name: "classes.csv", Reader: strings.NewReader("CODCLA,DESCR\n12,FIXAÇÃO\n")}
		r.Manufacturers = &importing.Source{Name: "fabricantes.csv", Reader: strings.NewReader("CODFAB,DESCR\n7,ACME INDUSTRIAL\n")}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"produtos.csv", "classes.csv", "fabricantes.csv"}, report.AuxiliaryFiles)

	snap := store.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "0012", snap.Products[0].GroupCode)
	assert.Equal(t, "007", snap.Products[0].ManufacturerCode)
	require.Len(t, snap.Groups, 1)
	assert.Equal(t, domain.ProductGroup{Code: "0012", Description: "FIXAÇÃO", Active: true}, snap.Groups[0])
	require.Len(t, snap.Manufacturers, 1)
	assert.Equal(t, "ACME INDUSTRIAL", snap.Manufacturers[0].Description)
	assert.Equal(t, "0012", snap.Sales[0].GroupCode)
}

func TestImportXLSXComAbasAuxiliares(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "BI"))
	for i, line := range []string{header, acmeLine} {
		cells := strings.Split(line, ",")
		row := make([]interface{}, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("BI", cell, &row))
	}
	_, err := f.NewSheet("Classes")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Classes", "A1", &[]interface{}{"CODCLA", "DESCR"}))
	require.NoError(t, f.SetSheetRow("Classes", "A2", &[]interface{}{"1", "FERRAGENS EM GERAL"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	store := memory.New()
	svc := importing.NewService(store, store, nil)

	report, err := svc.Import(context.Background(), importing.Request{
		File:    importing.Source{Name: "bi.xlsx", Reader: &buf},
		Options: importing.DefaultOptions(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TransactionsCreated)

	snap := store.Snapshot()
	require.Len(t, snap.Groups, 1)
	assert.Equal(t, "0001", snap.Groups[0].Code)
	assert.Equal(t, "FERRAGENS EM GERAL", snap.Groups[0].Description)
}

func TestImportComWorkers(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, strings.Replace(acmeLine, ",555,", ","+strconv.Itoa(1000+i)+",", 1))
	}

	report, err := runImport(t, svc, extract(lines...), func(r *importing.Request) {
		r.Options.Workers = 4
	})
	require.NoError(t, err)

	assert.Equal(t, 40, report.TransactionsCreated)
	assert.Equal(t, 1, report.EntitiesCreated[domain.EntityClient])
	assert.Equal(t, 1, report.EntitiesCreated[domain.EntityProduct])

	snap := store.Snapshot()
	assert.Len(t, snap.Sales, 40)
	assert.Len(t, snap.Clients, 1)
}

func TestImportAmostraDeErrosLimitada(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	bad := strings.Replace(acmeLine, ",10,", ",x,", 1)
	report, err := runImport(t, svc, extract(bad, bad, bad, acmeLine), func(r *importing.Request) {
		r.Options.ErrorSampleLimit = 2
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.RowsErred)
	assert.True(t, report.ErrorsTruncated)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 2, report.Errors[0].LineNumber)
	assert.Equal(t, 3, report.Errors[1].LineNumber)
}

func TestImportCodigosNormalizados(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)

	_, err := runImport(t, svc, extract(
		acmeLine,
		"BETA SA,98765432000188,2403,,12.0,23,Arruela,4567,Ferragens,1,1,700,SP",
	), nil)
	require.NoError(t, err)

	snap := store.Snapshot()
	for _, s := range snap.Stores {
		assert.Len(t, s.Code, domain.StoreCodeWidth)
	}
	for _, s := range snap.Salespeople {
		assert.Len(t, s.Code, domain.SalespersonCodeWidth)
	}
	for _, g := range snap.Groups {
		assert.Len(t, g.Code, domain.GroupCodeWidth)
	}
	for _, p := range snap.Products {
		assert.Len(t, p.Code, domain.ProductCodeWidth)
	}
	for _, s := range snap.Sales {
		assert.Equal(t, s.SaleDate.Format("2006"), s.Year)
		assert.Equal(t, s.SaleDate.Format("01"), s.Month)
		assert.Equal(t, s.Year+s.Month, s.YearMonth)
	}
}

func TestImportDocumentoForaDoPadrao(t *testing.T) {
	store := memory.New()
	svc := importing.NewService(store, store, nil)
	content := extract(
		"OMEGA LTDA,123456780001990,2401,,5,1,Parafuso,123,Ferragens,1,10.00,800,SP",
		"GAMA ME,1234567000199,2401,,5,1,Parafuso,123,Ferragens,1,10.00,801,SP",
	)

	for i := 0; i < 2; i++ {
		report, err := runImport(t, svc, content, nil)
		require.NoError(t, err)
		assert.Zero(t, report.RowsErred)
	}

	clients := map[string]domain.Client{}
	for _, c := range store.Snapshot().Clients {
		clients[c.Code] = c
	}
	require.Len(t, clients, 2)

	omega, ok := clients["1234567800"]
	require.True(t, ok)
	assert.Equal(t, "OMEGA LTDA", omega.Name)
	assert.Nil(t, omega.TaxID)

	gama, ok := clients["1234567000"]
	require.True(t, ok)
	require.NotNil(t, gama.TaxID)
	assert.Equal(t, "01234567000199", *gama.TaxID)
	assert.Equal(t, domain.TaxIDKindCNPJ, *gama.TaxIDKind)
}

func TestImportGravaResumoParcialEFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	runs := mocks.NewMockRunRecorder(ctrl)
	store := memory.New()
	svc := importing.NewService(store, runs, nil)

	var saved []domain.ImportRunStatus
	runs.EXPECT().SaveRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.ImportRunReport) error {
			saved = append(saved, r.Status)
			return nil
		}).Times(2)

	report, err := runImport(t, svc, extract(acmeLine), nil)
	require.NoError(t, err)

	assert.Equal(t, []domain.ImportRunStatus{domain.ImportRunRunning, domain.ImportRunCompleted}, saved)
	assert.True(t, report.Status.IsFinal())
}
