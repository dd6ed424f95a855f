package service

import (
	"regexp"
	"strings"

	"pricematch-service/internal/match/model"
)

// Два режима чистки: "loose" — агрессивная, для скоринга;
// "light" — бережная, сохраняет скобки (нужны для цвета).
// Политика "разрешённого алфавита" задаётся классом символов,
// эмодзи и флаги отсекаются как не-буквы/не-цифры.
var (
	reLoose = regexp.MustCompile(`[^\p{L}\p{N}\s.+/-]+`)
	reLight = regexp.MustCompile(`[^\p{L}\p{N}\s.,+/()-]+`)

	reDigits = regexp.MustCompile(`^\d+$`)
	reMemTok = regexp.MustCompile(`^\d+(?:gb|гб)$`)
)

// CleanLoose — для токенизации под ключевые слова.
func CleanLoose(s string) string {
	return collapseSpaces(reLoose.ReplaceAllString(s, " "))
}

// CleanLight — для имён листингов и извлечения цвета.
func CleanLight(s string) string {
	return collapseSpaces(reLight.ReplaceAllString(s, " "))
}

// Keywords нормализует свободный текст в набор ключевых слов:
// lower → чистка → разбор "a/b" в токены памяти → синонимы → фильтры.
// Порядок токенов — порядок первого вхождения (важно для детерминизма).
func Keywords(raw string, opts model.Options) []string {
	cleaned := CleanLoose(strings.ToLower(raw))
	if cleaned == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(tok string) {
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	for _, word := range strings.Fields(cleaned) {
		// "128/256" → 128gb, 256gb; не-цифровые части идут как обычные токены
		if strings.Contains(word, "/") {
			for _, part := range strings.Split(word, "/") {
				if part == "" {
					continue
				}
				if reDigits.MatchString(part) {
					add(part + "gb")
				} else if tok, ok := filterToken(part, opts); ok {
					add(tok)
				}
			}
			continue
		}
		if tok, ok := filterToken(word, opts); ok {
			add(tok)
		}
	}
	return out
}

// filterToken применяет синонимы и отбрасывает стоп-слова, короткие
// и чисто числовые токены. Токены вида "128gb" уже нормализованы
// и фильтрам не подлежат.
func filterToken(word string, opts model.Options) (string, bool) {
	if reMemTok.MatchString(word) {
		return strings.Replace(word, "гб", "gb", 1), true
	}
	if rep, ok := opts.Synonyms[word]; ok {
		word = rep
	}
	if _, stop := opts.StopWords[word]; stop {
		return "", false
	}
	if len([]rune(word)) <= 2 || reDigits.MatchString(word) {
		return "", false
	}
	return word, true
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
