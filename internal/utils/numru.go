package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxNonDigit = regexp.MustCompile(`[^\d]`)

// ParseIntRU парсит целые из "грязных" ячеек прайсов: "52 000",
// "52 000 ₽", "52000,00" (NBSP/NNBSP, пробелы-разряды; копейки отбрасываются).
func ParseIntRU(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// отрезать дробную часть вида "52000,00" / "52000.00"
	if i := strings.IndexAny(s, ",."); i >= 0 {
		s = s[:i]
	}
	// убрать неразрывные/узкие пробелы и обычные пробелы
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "")
	s = repl.Replace(s)
	s = rxNonDigit.ReplaceAllString(s, "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
