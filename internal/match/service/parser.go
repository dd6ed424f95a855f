package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"pricematch-service/internal/fileio"
	"pricematch-service/internal/match/model"
)

// Приоритетные списки заголовков: у поставщиков одна и та же колонка
// называется как угодно. Побеждает первая непустая.
var (
	supplierAliases = []string{"поставщик", "supplier", "продавец", "vendor"}
	nameAliases     = []string{"прайс", "наименование", "название", "name", "товар", "item"}

	catalogNameAliases = []string{"наименование", "название", "name", "товар"}
	catalogCodeAliases = []string{"внешний код", "код", "external code", "code", "артикул"}
)

// Чёрный список: депозиты, скидки, уценка, оптовые "от N шт",
// телефонные номера — это не товары.
var blacklist = []*regexp.Regexp{
	regexp.MustCompile(`(?i)депозит`),
	regexp.MustCompile(`(?i)скидк`),
	regexp.MustCompile(`(?i)уценк`),
	regexp.MustCompile(`(?i)от\s+\d+\s*шт`),
	regexp.MustCompile(`\+7[-\s]?\d{3}[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}`),
}

// normHeaderKey приводит имя колонки к сравнимому виду: нижний регистр,
// ё→е, NBSP→пробел, только буквы/цифры.
var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "ё", "е").Replace(s)
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveField возвращает первое непустое значение по списку псевдонимов:
// сперва точное имя колонки, затем нормализованное, затем contains
// (составные заголовки вида "наименование товара").
func resolveField(rec fileio.Row, aliases []string) string {
	for _, a := range aliases {
		if v := strings.TrimSpace(rec[a]); v != "" {
			return v
		}
	}
	for _, a := range aliases {
		na := normHeaderKey(a)
		for k, v := range rec {
			if normHeaderKey(k) == na && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	for _, a := range aliases {
		na := normHeaderKey(a)
		for k, v := range rec {
			if strings.Contains(normHeaderKey(k), na) && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// ParseCatalog собирает товары каталога; строки без названия
// пропускаются с предупреждением.
func ParseCatalog(rows []fileio.Row, log zerolog.Logger) []model.CatalogProduct {
	out := make([]model.CatalogProduct, 0, len(rows))
	for _, rec := range rows {
		name := resolveField(rec, catalogNameAliases)
		if name == "" {
			log.Warn().Interface("row", rec).Msg("catalog row without name, skipped")
			continue
		}
		code := resolveField(rec, catalogCodeAliases)
		if code == "" {
			code = "N/A"
		}
		out = append(out, model.CatalogProduct{Name: name, ExternalCode: code})
	}
	return out
}

// ParseListings превращает сырые строки прайсов в валидные листинги:
// разрешение колонок → извлечение цены → чистка имени → фильтры →
// дедупликация по (поставщик, имя, цена).
func ParseListings(rows []fileio.Row, opts model.Options, log zerolog.Logger) []model.SupplierListing {
	out := make([]model.SupplierListing, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, rec := range rows {
		rawName := resolveField(rec, nameAliases)
		if rawName == "" {
			continue
		}
		supplier := resolveField(rec, supplierAliases)
		if supplier == "" {
			log.Warn().Str("name", rawName).Msg("listing without supplier, skipped")
			continue
		}

		price, stripped, ok := ExtractPrice(rawName, rec, opts)
		if !ok {
			log.Warn().Str("name", rawName).Msg("price not found, listing skipped")
			continue
		}

		name := cleanListingName(stripped)
		if len([]rune(name)) < opts.MinNameLen {
			continue
		}
		if isBlacklisted(name) {
			log.Warn().Str("name", name).Msg("blacklisted listing, skipped")
			continue
		}
		if !passesAllowList(supplier, name, opts.AllowList) {
			log.Warn().Str("supplier", supplier).Str("name", name).Msg("listing outside supplier allow-list, skipped")
			continue
		}

		key := supplier + "\x00" + name + "\x00" + strconv.Itoa(price)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, model.SupplierListing{Supplier: supplier, Name: name, Price: price})
	}
	return out
}

// cleanListingName: эмодзи/флаги долой, дефисы в пробелы, пробелы схлопнуть.
func cleanListingName(s string) string {
	s = CleanLight(s)
	s = strings.ReplaceAll(s, "-", " ")
	return collapseSpaces(s)
}

func isBlacklisted(name string) bool {
	for _, re := range blacklist {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// passesAllowList: поставщики из таблицы обязаны содержать хотя бы одно
// разрешённое слово; отсутствующие в таблице — пропускаются как есть.
func passesAllowList(supplier, name string, allow map[string][]string) bool {
	words, ok := allow[supplier]
	if !ok {
		return true
	}
	lower := strings.ToLower(name)
	for _, w := range words {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
