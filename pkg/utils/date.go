package utils

import (
	"strconv"
	"time"
)

// FirstDayOfMonth monta o primeiro dia do mês em UTC.
// Retorna false se ano ou mês estiverem fora do intervalo aceito
func FirstDayOfMonth(year, month int) (time.Time, bool) {
	if year < 1900 || year > 2999 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}

// Atoi aceita apenas dígitos, sem sinal
func Atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
