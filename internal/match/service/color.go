package service

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var reBrackets = regexp.MustCompile(`\((.*?)\)`)

// Маркеры сертификации/региона: цвет обычно стоит прямо перед ними
// ("... 256GB Blue Ростест").
var certMarkers = map[string]struct{}{
	"ростест": {}, "rst": {}, "eac": {}, "евротест": {}, "global": {},
}

// ExtractColor ищет цвет в имени: сначала содержимое скобок, затем токен
// перед маркером сертификации, затем хвостовые токены. Нераспознанный
// токен — это просто "цвета нет", не ошибка.
func ExtractColor(raw string, colors map[string][]string) (string, bool) {
	syn := colorSynonyms(colors)
	lower := strings.ToLower(raw)

	for _, m := range reBrackets.FindAllStringSubmatch(lower, -1) {
		for _, tok := range strings.Fields(CleanLight(m[1])) {
			if c, ok := resolveColor(tok, syn); ok {
				return c, true
			}
		}
	}

	toks := strings.Fields(CleanLight(lower))
	for i, tok := range toks {
		if _, cert := certMarkers[tok]; cert && i > 0 {
			if c, ok := resolveColor(toks[i-1], syn); ok {
				return c, true
			}
		}
	}

	// хвост имени: "iphone 13 128gb black" / "... синий титан"
	for i := len(toks) - 1; i >= 0 && i >= len(toks)-2; i-- {
		if c, ok := resolveColor(toks[i], syn); ok {
			return c, true
		}
	}
	return "", false
}

// resolveColor — точное совпадение по таблице синонимов, затем
// допуск одной опечатки для достаточно длинных токенов.
func resolveColor(tok string, syn map[string]string) (string, bool) {
	if c, ok := syn[tok]; ok {
		return c, true
	}
	if len([]rune(tok)) < 5 {
		return "", false
	}
	best := ""
	for s := range syn {
		if abs(len([]rune(s))-len([]rune(tok))) > 1 || fuzzy.LevenshteinDistance(s, tok) != 1 {
			continue
		}
		// детерминированный выбор при нескольких кандидатах
		if best == "" || s < best {
			best = s
		}
	}
	if best != "" {
		return syn[best], true
	}
	return "", false
}

func colorSynonyms(colors map[string][]string) map[string]string {
	m := make(map[string]string)
	for canonical, variants := range colors {
		m[canonical] = canonical
		for _, v := range variants {
			m[v] = canonical
		}
	}
	return m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
