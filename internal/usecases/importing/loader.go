package importing

import (
	"bytes"
	"encoding/csv"
	"io"
	"iter"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
	ExtXLS  = ".xls"
)

// Colunas do extrato do BI
const (
	ColClient          = "CLIENTE"
	ColTaxID           = "CNPJ"
	ColPeriod          = "ANOMES"
	ColYear            = "ANO"
	ColMonth           = "MES"
	ColSalespersonName = "VEND"
	ColSalesperson     = "CODVEN"
	ColSalespersonNF   = "CLIVEN"
	ColStore           = "NUMLOJ"
	ColProduct         = "PRODUTO"
	ColProductCode     = "CODPRO"
	ColClass           = "CLASSE"
	ColClassCode       = "CODCLA"
	ColManufacturer    = "CODFAB"
	ColQuantity        = "QTD"
	ColTotal           = "TOTAL"
	ColInvoice         = "NF"
	ColInvoiceSeries   = "SERIE"
	ColState           = "UF"
	ColDescription     = "DESCR"
)

// RequiredColumns precisam existir no cabeçalho do extrato principal
var RequiredColumns = []string{
	ColClient,
	ColTaxID,
	ColStore,
	ColSalesperson,
	ColProductCode,
	ColProduct,
	ColClass,
	ColQuantity,
	ColTotal,
	ColInvoice,
	ColPeriod,
	ColState,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row é uma linha do arquivo com colunas já normalizadas. Os valores não são convertidos
type Row struct {
	Line   int
	values map[string]string
}

func NewRow(line int, values map[string]string) Row {
	normalized := make(map[string]string, len(values))
	for k, v := range values {
		normalized[normalizeColumn(k)] = strings.TrimSpace(v)
	}
	return Row{Line: line, values: normalized}
}

func (r Row) Get(column string) string {
	return r.values[column]
}

// Table é uma planilha carregada em memória
type Table struct {
	Name    string
	Columns []string
	rows    []Row
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Rows percorre as linhas na ordem do arquivo
func (t *Table) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range t.rows {
			if !yield(row) {
				return
			}
		}
	}
}

func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// MissingColumns lista as colunas exigidas que não estão no cabeçalho
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, column := range required {
		if !t.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	return missing
}

// Workbook é o arquivo carregado. Extra guarda as demais abas de um .xlsx
type Workbook struct {
	Primary *Table
	Extra   []*Table
}

// Load lê o arquivo inteiro respeitando o limite de tamanho
func Load(name string, r io.Reader, maxBytes int64) (*Workbook, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ExtCSV && ext != ExtXLSX && ext != ExtXLS {
		return nil, newFileFormatError("extensão não suportada: "+name, nil)
	}

	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newFileFormatError("falha ao ler "+name, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, newFileFormatError("arquivo acima do limite de tamanho: "+name, nil)
	}

	var wb *Workbook
	switch ext {
	case ExtCSV:
		wb, err = loadCSV(data)
	case ExtXLSX:
		wb, err = loadXLSX(data)
	case ExtXLS:
		wb, err = loadXLS(data)
	}
	if err != nil {
		return nil, newFileFormatError("arquivo ilegível: "+name, err)
	}

	wb.Primary.Name = name
	return wb, nil
}

func loadCSV(data []byte) (*Workbook, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var reader io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		reader = transform.NewReader(reader, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(reader)
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "csv")
	}

	return &Workbook{Primary: buildTable("", records)}, nil
}

// detectDelimiter aceita ";" quando o cabeçalho claramente usa ponto e vírgula
func detectDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	if bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(",")) {
		return ';'
	}
	return ','
}

func loadXLSX(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx sem planilhas")
	}

	wb := &Workbook{}
	for i, sheet := range sheets {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, errors.Wrapf(err, "planilha %s", sheet)
		}

		table := buildTable(sheet, rows)
		if i == 0 {
			wb.Primary = table
			continue
		}
		wb.Extra = append(wb.Extra, table)
	}

	return wb, nil
}

// loadXLS lê só a primeira planilha. O leitor de BIFF indexa o stream sem
// checar limites, então um arquivo danificado vira erro em vez de panic
func loadXLS(data []byte) (wb *Workbook, err error) {
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, errors.Errorf("xls danificado: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "xls")
	}
	if len(workbook.GetSheets()) == 0 {
		return nil, errors.New("xls sem planilhas")
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, errors.Wrap(err, "xls")
	}

	var records [][]string
	for _, row := range sheet.GetRows() {
		var record []string
		for _, cell := range row.GetCols() {
			record = append(record, cell.GetString())
		}
		records = append(records, record)
	}

	return &Workbook{Primary: buildTable("", records)}, nil
}

// buildTable usa a primeira linha não vazia como cabeçalho.
// Line é o número da linha na planilha (a primeira é 1)
func buildTable(name string, records [][]string) *Table {
	table := &Table{Name: name}

	headerAt := -1
	for i, record := range records {
		if !isBlank(record) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return table
	}

	header := make([]string, len(records[headerAt]))
	seen := make(map[string]bool, len(header))
	for i, column := range records[headerAt] {
		column = normalizeColumn(column)
		header[i] = column
		if column != "" && !seen[column] {
			seen[column] = true
			table.Columns = append(table.Columns, column)
		}
	}

	for i := headerAt + 1; i < len(records); i++ {
		record := records[i]
		if isBlank(record) {
			continue
		}

		values := make(map[string]string, len(header))
		for j, column := range header {
			if column == "" || j >= len(record) {
				continue
			}
			if _, dup := values[column]; dup {
				continue
			}
			values[column] = strings.TrimSpace(record[j])
		}
		table.rows = append(table.rows, Row{Line: i + 1, values: values})
	}

	return table
}

func normalizeColumn(column string) string {
	return strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
