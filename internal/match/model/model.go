package model

// CatalogProduct — позиция нашего каталога (источник истины).
type CatalogProduct struct {
	Name         string `json:"name"`
	ExternalCode string `json:"external_code"`
}

// SupplierListing — одно предложение поставщика после чистки и извлечения цены.
type SupplierListing struct {
	Supplier string `json:"supplier"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
}

// Match — принятый кандидат со скором (живёт только внутри одного прогона).
type Match struct {
	Listing SupplierListing `json:"listing"`
	Score   float64         `json:"score"`
}

// MatchedSupplier — пара цена/поставщик в итоговой строке, порядок = ранг.
type MatchedSupplier struct {
	Price    int    `json:"price"`
	Supplier string `json:"supplier"`
}

// OutputRow — плоская строка результата: наше название, внешний код,
// затем пары price_i/supplier_i по убыванию уверенности.
type OutputRow struct {
	OurName      string            `json:"our_name"`
	ExternalCode string            `json:"external_code"`
	Suppliers    []MatchedSupplier `json:"suppliers"`
}

// Weights — веса слагаемых скоринга. Значения — конфигурация, не вычисляются.
type Weights struct {
	Similarity float64 `json:"similarity"` // похожесть строк целиком
	Keyword    float64 `json:"keyword"`    // доля ключевых слов-подстрок
	Memory     float64 `json:"memory"`     // конфигурация памяти (128/256)
	Color      float64 `json:"color"`      // совпадение цвета
}

// Options — вся настроечная поверхность конвейера в одном месте.
type Options struct {
	MinPrice   int     `json:"min_price"`
	MaxPrice   int     `json:"max_price"`
	Threshold  float64 `json:"threshold"`
	MaxMatches int     `json:"max_matches"`
	MinNameLen int     `json:"min_name_len"`
	Weights    Weights `json:"weights"`

	// словарные таблицы; nil → берутся дефолты
	StopWords map[string]struct{} `json:"-"`
	Synonyms  map[string]string   `json:"-"`
	AllowList map[string][]string `json:"-"`
	Colors    map[string][]string `json:"-"`
}

// Stats — диагностика прогона (для логов и ответа API).
type Stats struct {
	CatalogRows  int `json:"catalog_rows"`
	SupplierRows int `json:"supplier_rows"`
	Listings     int `json:"listings"`
	Matched      int `json:"matched"`
	Failed       int `json:"failed"`
}

type Result struct {
	Rows  []OutputRow `json:"rows"`
	Stats Stats       `json:"stats"`
	Opts  Options     `json:"opts"`
}

// DefaultOptions — дефолты, подобранные под реальные прайсы поставщиков.
func DefaultOptions() Options {
	return Options{
		MinPrice:   1000,
		MaxPrice:   300000,
		Threshold:  0.7,
		MaxMatches: 5,
		MinNameLen: 5,
		Weights: Weights{
			Similarity: 0.5,
			Keyword:    0.3,
			Memory:     0.12,
			Color:      0.08,
		},
		StopWords: DefaultStopWords(),
		Synonyms:  DefaultSynonyms(),
		AllowList: map[string][]string{},
		Colors:    DefaultColors(),
	}
}

// DefaultStopWords — бренд-нейтральные существительные, предлоги и единицы памяти.
func DefaultStopWords() map[string]struct{} {
	words := []string{
		"смартфон", "планшет", "телефон", "часы", "watch", "phone",
		"smartphone", "tablet", "mobile", "мобильный", "сотовый",
		"в", "из", "для", "с", "по", "от",
		"gb", "гб", "ram", "rom",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// DefaultSynonyms — точные замены токен→представитель (после токенизации).
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"type-c": "usb-c",
		"iphone": "apple",
		"айфон":  "apple",
	}
}

// DefaultColors — канонический цвет → варианты написания/транслитерации.
func DefaultColors() map[string][]string {
	return map[string][]string{
		"black":    {"black", "черный", "чёрный", "midnight", "graphite", "графитовый"},
		"white":    {"white", "белый", "starlight", "сияющая"},
		"blue":     {"blue", "синий", "голубой", "navy"},
		"red":      {"red", "красный"},
		"green":    {"green", "зеленый", "зелёный", "mint", "мятный"},
		"purple":   {"purple", "фиолетовый", "лавандовый", "lavender"},
		"pink":     {"pink", "розовый"},
		"gold":     {"gold", "золотой", "золотистый"},
		"silver":   {"silver", "серебристый", "серый", "gray", "grey"},
		"yellow":   {"yellow", "желтый", "жёлтый"},
		"orange":   {"orange", "оранжевый"},
		"titanium": {"titanium", "титановый", "титан"},
	}
}
