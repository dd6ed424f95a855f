package service

import (
	"regexp"
	"strings"

	"pricematch-service/internal/fileio"
	"pricematch-service/internal/match/model"
	"pricematch-service/internal/utils"
)

// Паттерны цены в свободном тексте, в порядке приоритета:
// сначала число с валютным знаком, затем число в самом конце строки,
// затем число внутри строки. Побеждает первый паттерн, давший
// значение внутри допустимого диапазона — дальше не пробуем.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4,6})\s*[₽$€]`),
	regexp.MustCompile(`(?:^|[^\d])(\d{4,6})\s*$`),
	regexp.MustCompile(`\s(\d{4,6})\s`),
}

// Возможные колонки с ценой, если в тексте цены нет.
var priceColumns = []string{"цена", "Цена", "price", "Price"}

// ExtractPrice извлекает цену из текста листинга либо из ценовых колонок.
// Возвращает цену, имя с вырезанным фрагментом цены и ok=false, если
// ни один источник не дал число в диапазоне. Ноль ценой не считается.
func ExtractPrice(text string, row fileio.Row, opts model.Options) (int, string, bool) {
	for _, re := range pricePatterns {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		v, ok := utils.ParseIntRU(text[loc[2]:loc[3]])
		if !ok || v < opts.MinPrice || v > opts.MaxPrice {
			continue
		}
		// цена найдена в имени → вычищаем её фрагмент, чтобы хвост
		// вида "52000 ₽" не утёк в скоринг
		name := text[:loc[2]] + text[loc[3]:]
		name = strings.NewReplacer("₽", " ", "$", " ", "€", " ").Replace(name)
		return v, collapseSpaces(name), true
	}

	for _, col := range priceColumns {
		raw, ok := row[col]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if v, ok := utils.ParseIntRU(raw); ok && v >= opts.MinPrice && v <= opts.MaxPrice {
			return v, collapseSpaces(text), true
		}
	}
	return 0, text, false
}
