package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"pricematch-service/internal/match/model"
)

// Транслитерации брендовых токенов: поставщики пишут и так, и так.
// Срез, не map — порядок добавления должен быть стабильным.
var translits = []struct{ brand, ru string }{
	{"iphone", "айфон"},
	{"ipad", "айпад"},
	{"airpods", "аирподс"},
}

// Dictionary — персистентный кеш "название товара → ключевые слова".
// Ключ — исходная строка названия, не содержимое токенов. Формат на
// диске — плоский JSON map[string][]string. Владеет им вызывающий код:
// загрузили при старте, Flush при завершении (или после вставки).
type Dictionary struct {
	mu      sync.Mutex
	path    string
	entries map[string][]string
	log     zerolog.Logger
}

// LoadDictionary читает кеш с диска. Отсутствующий или битый файл —
// не фатально: начинаем с пустого и перестраиваем по ходу.
func LoadDictionary(path string, log zerolog.Logger) *Dictionary {
	d := &Dictionary{
		path:    path,
		entries: make(map[string][]string),
		log:     log,
	}
	if path == "" {
		return d
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("dictionary read failed, starting empty")
		}
		return d
	}
	if len(data) == 0 {
		return d
	}
	if err := json.Unmarshal(data, &d.entries); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dictionary corrupt, starting empty")
		d.entries = make(map[string][]string)
	}
	return d
}

// Lookup возвращает ключевые слова товара, вычисляя и запоминая их при
// первом обращении (check-then-insert под мьютексом).
func (d *Dictionary) Lookup(name string, opts model.Options) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if kw, ok := d.entries[name]; ok {
		return kw
	}
	kw := Keywords(name, opts)
	kw = appendTransliterations(name, kw)
	d.entries[name] = kw
	return kw
}

// appendTransliterations добавляет русские варианты написания брендов,
// встречающихся в исходном названии.
func appendTransliterations(name string, kw []string) []string {
	lower := strings.ToLower(name)
	for _, t := range translits {
		if !strings.Contains(lower, t.brand) {
			continue
		}
		dup := false
		for _, k := range kw {
			if k == t.ru {
				dup = true
				break
			}
		}
		if !dup {
			kw = append(kw, t.ru)
		}
	}
	return kw
}

// Flush переписывает файл кеша целиком.
func (d *Dictionary) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path == "" {
		return nil
	}
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(d.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, data, 0o644)
}

// Len — число закешированных названий (для логов).
func (d *Dictionary) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}
