package service

import (
	"regexp"
	"sort"
	"strings"

	"pricematch-service/internal/match/model"
)

// Конфигурация памяти: две группы цифр через "/" перед единицей.
var reMemoryCfg = regexp.MustCompile(`(?i)(\d+)\s*/\s*(\d+)\s*(?:gb|гб)`)

// ExtractMemoryConfig возвращает строку вида "128/256" либо "".
func ExtractMemoryConfig(raw string) string {
	m := reMemoryCfg.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1] + "/" + m[2]
}

// Match оценивает весь пул листингов против одного товара каталога и
// возвращает принятых кандидатов по убыванию уверенности: не больше
// MaxMatches, не больше одного листинга на поставщика. Пустой пул или
// пустой набор ключевых слов — пустой результат, не ошибка.
func Match(product model.CatalogProduct, pool []model.SupplierListing, dict *Dictionary, opts model.Options) []model.Match {
	keywords := dict.Lookup(product.Name, opts)
	if len(keywords) == 0 || len(pool) == 0 {
		return nil
	}

	memoryCfg := ExtractMemoryConfig(product.Name)
	productColor, hasColor := ExtractColor(product.Name, opts.Colors)
	productName := strings.ToLower(CleanLight(product.Name))

	type candidate struct {
		idx   int
		score float64
	}
	var accepted []candidate

	for i, listing := range pool {
		name := strings.ToLower(listing.Name)

		sim := similarity(productName, name)
		kw := keywordOverlap(keywords, name)

		memScore := 0.0
		if memoryCfg != "" && strings.Contains(name, memoryCfg) {
			memScore = 1
		}

		// цвет нейтрален, если его нет хотя бы с одной стороны
		colorScore := 0.0
		if listingColor, ok := ExtractColor(listing.Name, opts.Colors); !hasColor || !ok || listingColor == productColor {
			colorScore = 1
		}

		w := opts.Weights
		score := w.Similarity*sim + w.Keyword*kw + w.Memory*memScore + w.Color*colorScore
		if score > opts.Threshold {
			accepted = append(accepted, candidate{idx: i, score: score})
		}
	}

	// стабильная сортировка: при равном скоре побеждает исходный порядок пула
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].score > accepted[j].score
	})

	seen := make(map[string]struct{}, len(accepted))
	out := make([]model.Match, 0, opts.MaxMatches)
	for _, c := range accepted {
		l := pool[c.idx]
		if _, dup := seen[l.Supplier]; dup {
			continue
		}
		seen[l.Supplier] = struct{}{}
		out = append(out, model.Match{Listing: l, Score: c.score})
		if len(out) >= opts.MaxMatches {
			break
		}
	}
	return out
}

// keywordOverlap — доля ключевых слов, найденных подстроками в имени
// кандидата. Транслитерационные варианты расширяют поиск, но не
// увеличивают знаменатель: кириллический дубль латинского бренда не
// должен штрафовать латинские прайсы.
func keywordOverlap(keywords []string, name string) float64 {
	total, hits := 0, 0
	for _, kw := range keywords {
		if !isTranslitVariant(kw) {
			total++
		}
		if strings.Contains(name, kw) {
			hits++
		}
	}
	if total == 0 {
		total = len(keywords)
	}
	if hits > total {
		hits = total
	}
	return float64(hits) / float64(total)
}

func isTranslitVariant(kw string) bool {
	for _, t := range translits {
		if kw == t.ru {
			return true
		}
	}
	return false
}
