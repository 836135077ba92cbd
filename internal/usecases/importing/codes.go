package importing

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/pkg/utils"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const syntheticClientMarker = "N"

var (
	trailingZeroFraction = regexp.MustCompile(`^(\d+)\.0+$`)
	scientificNotation   = regexp.MustCompile(`^\d+(\.\d+)?[eE]\+?\d+$`)
	leadingTaxID         = regexp.MustCompile(`^(\d{8,14})\s+(.+)$`)
	nonDigit             = regexp.MustCompile(`\D`)
	whitespace           = regexp.MustCompile(`\s+`)

	errEmptyValue = errors.New("valor vazio")
)

// cleanCell remove espaços e o ".0" que planilhas acrescentam a números inteiros
func cleanCell(raw string) string {
	s := strings.TrimSpace(raw)
	if m := trailingZeroFraction.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if scientificNotation.MatchString(s) {
		if d, err := decimal.NewFromString(s); err == nil && d.IsInteger() {
			return d.String()
		}
	}
	return s
}

// NormalizeCode completa o código com zeros à esquerda até a largura.
// Códigos maiores que a largura são rejeitados, nunca truncados
func NormalizeCode(raw string, width int) (string, error) {
	s := cleanCell(raw)
	if s == "" {
		return "", errEmptyValue
	}
	if len(s) > width {
		return "", fmt.Errorf("código %q excede %d caracteres", s, width)
	}
	return strings.Repeat("0", width-len(s)) + s, nil
}

// NormalizeManufacturerCode usa largura mínima de 3 e aceita até 10 caracteres
func NormalizeManufacturerCode(raw string) (string, error) {
	s := cleanCell(raw)
	if len(s) > domain.ManufacturerCodeWidth && len(s) <= domain.ManufacturerCodeMaxWidth {
		return s, nil
	}
	return NormalizeCode(s, domain.ManufacturerCodeWidth)
}

// TaxIDDigits devolve os dígitos do documento como vieram na planilha
func TaxIDDigits(raw string) string {
	return nonDigit.ReplaceAllString(cleanCell(raw), "")
}

// NormalizeTaxID devolve o CPF/CNPJ que será gravado no cliente.
// 10 dígitos viram CPF (zero perdido na planilha), 12 a 14 viram CNPJ com zeros à esquerda.
// O código do cliente não depende disso: sai sempre dos dígitos brutos
func NormalizeTaxID(raw string) (string, bool) {
	digits := TaxIDDigits(raw)

	switch n := len(digits); {
	case n == domain.CPFLength-1:
		return "0" + digits, true
	case n == domain.CPFLength:
		return digits, true
	case n > domain.CPFLength && n <= domain.CNPJLength:
		return strings.Repeat("0", domain.CNPJLength-n) + digits, true
	default:
		return "", false
	}
}

// ClientCodeFromTaxID usa os 10 primeiros dígitos do documento, sem completar CPF/CNPJ
func ClientCodeFromTaxID(digits string) string {
	if len(digits) >= domain.ClientCodeSize {
		return digits[:domain.ClientCodeSize]
	}
	return digits + strings.Repeat("0", domain.ClientCodeSize-len(digits))
}

// SameCNPJRoot compara a raiz (8 primeiros dígitos) de dois CNPJs
func SameCNPJRoot(a, b string) bool {
	if len(a) != domain.CNPJLength || len(b) != domain.CNPJLength {
		return false
	}
	return a[:domain.CNPJRootLength] == b[:domain.CNPJRootLength]
}

// NormalizeName remove acentos, colapsa espaços e coloca em maiúsculas
func NormalizeName(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}
	return strings.ToUpper(strings.TrimSpace(whitespace.ReplaceAllString(folded, " ")))
}

// StripLeadingTaxID remove o documento que às vezes vem colado no início do nome
func StripLeadingTaxID(name, taxID string) string {
	name = strings.TrimSpace(name)
	m := leadingTaxID.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	if taxID == "" || strings.HasPrefix(strings.TrimLeft(taxID, "0"), strings.TrimLeft(m[1], "0")) {
		return strings.TrimSpace(m[2])
	}
	return name
}

// SyntheticClientPrefix monta "N" + iniciais de até três palavras do nome
func SyntheticClientPrefix(name string) (string, error) {
	var initials strings.Builder
	for _, word := range strings.Fields(NormalizeName(name)) {
		for _, r := range word {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				initials.WriteRune(r)
				break
			}
		}
		if initials.Len() == 3 {
			break
		}
	}
	if initials.Len() == 0 {
		return "", errEmptyValue
	}
	return syntheticClientMarker + initials.String(), nil
}

// FormatSyntheticCode completa o prefixo com a sequência até o tamanho do código
func FormatSyntheticCode(prefix string, seq int) (string, error) {
	width := domain.ClientCodeSize - len(prefix)
	s := fmt.Sprintf("%0*d", width, seq)
	if len(s) > width {
		return "", fmt.Errorf("sequência %d esgotada para o prefixo %s", seq, prefix)
	}
	return prefix + s, nil
}

// syntheticSequence extrai a sequência de um código sintético existente
func syntheticSequence(code, prefix string) int {
	n, ok := utils.Atoi(strings.TrimPrefix(code, prefix))
	if !ok || !strings.HasPrefix(code, prefix) {
		return 0
	}
	return n
}

// ParseAmount aceita vírgula como separador decimal e rejeita negativos
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if s == "" {
		return decimal.Zero, errEmptyValue
	}
	if strings.Contains(s, ",") {
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor não numérico %q", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("valor negativo %q", raw)
	}
	return d, nil
}

// ParsePeriod prefere ANOMES (AAMM). Sem ele, usa ANO e MES
func ParsePeriod(anomes, year, month string) (time.Time, error) {
	if s := cleanCell(anomes); len(s) == 4 {
		yy, okY := utils.Atoi(s[:2])
		mm, okM := utils.Atoi(s[2:])
		if okY && okM {
			if d, ok := utils.FirstDayOfMonth(2000+yy, mm); ok {
				return d, nil
			}
		}
	}

	y, okY := utils.Atoi(cleanCell(year))
	m, okM := utils.Atoi(cleanCell(month))
	if okY && okM {
		if y < 100 {
			y += 2000
		}
		if d, ok := utils.FirstDayOfMonth(y, m); ok {
			return d, nil
		}
	}

	return time.Time{}, fmt.Errorf("período inválido (ANOMES=%q ANO=%q MES=%q)", anomes, year, month)
}
