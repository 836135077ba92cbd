package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const extract = "CLIENTE,CNPJ,ANOMES,VEND,CODVEN,NUMLOJ,PRODUTO,CODPRO,CLASSE,QTD,TOTAL,NF,UF\n" +
	"ACME LTDA,12345678000199,2401,JOAO,5,1,Parafuso,123,Ferragens,10,100.00,555,SP\n" +
	"SEM PERIODO,98765432000155,,JOAO,5,1,Porca,124,Ferragens,1,2.00,556,SP\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunCmd_Memoria(t *testing.T) {
	file := writeFile(t, "bi.csv", extract)
	classes := writeFile(t, "classes.csv", "CODCLA,DESCR\n1,FERRAGENS EM GERAL\n")

	t.Run("resumo em texto", func(t *testing.T) {
		out, err := execute(t, "run", "--memory", "--file", file, "--classes", classes)
		require.NoError(t, err)

		assert.Contains(t, out, "completed_with_errors")
		assert.Contains(t, out, "Vendas criadas: 1")
		assert.Contains(t, out, "Linhas com erro: 1")
		assert.Contains(t, out, "linha 3:")
	})

	t.Run("relatório em JSON", func(t *testing.T) {
		out, err := execute(t, "run", "--memory", "--json", "--workers", "2", "--file", file)
		require.NoError(t, err)

		var report domain.ImportRunReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 1, report.TransactionsCreated)
		assert.Equal(t, 1, report.RowsErred)
		assert.Equal(t, "bi.csv", report.FileName)
	})

	t.Run("ensaio", func(t *testing.T) {
		out, err := execute(t, "run", "--memory", "--dry-run", "--file", file)
		require.NoError(t, err)
		assert.Contains(t, out, "Modo ensaio")
	})
}

func TestRunCmd_Erros(t *testing.T) {
	t.Run("sem --file", func(t *testing.T) {
		_, err := execute(t, "run", "--memory")
		assert.Error(t, err)
	})

	t.Run("arquivo inexistente", func(t *testing.T) {
		_, err := execute(t, "run", "--memory", "--file", filepath.Join(t.TempDir(), "nada.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("extensão não suportada imprime o relatório e falha", func(t *testing.T) {
		out, err := execute(t, "run", "--memory", "--file", writeFile(t, "bi.txt", extract))
		require.Error(t, err)
		assert.Contains(t, out, "failed")
		assert.Contains(t, out, "Erro fatal")
	})
}

func TestMigrateCmd_Print(t *testing.T) {
	out, err := execute(t, "migrate", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "CREATE TABLE IF NOT EXISTS sales")
}

func TestWriteReport_JSON(t *testing.T) {
	report := &domain.ImportRunReport{RunID: "abc", Status: domain.ImportRunCompleted}

	buf := &bytes.Buffer{}
	require.NoError(t, writeReport(buf, report, true))
	assert.Equal(t, utils.PrettyJson(report)+"\n", buf.String())
}
