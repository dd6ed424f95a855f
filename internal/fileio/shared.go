package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Row — одна строка таблицы: значение по имени колонки. Схемы нет:
// состав колонок у каждого источника свой, разбором занимается парсер.
type Row map[string]string

// ReadTable выбирает парсер по расширению и возвращает строки источника.
// headerRow — номер строки заголовков (1-based).
func ReadTable(r io.Reader, filename string, headerRow int) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// headersFrom берёт строку заголовков; пустым даёт имена "Column N".
func headersFrom(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	src := rows[idx]
	out := make([]string, len(src))
	for i, v := range src {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// toRows собирает Row по заголовкам, пропуская полностью пустые строки.
func toRows(rows [][]string, headers []string, headerRow int) []Row {
	var out []Row
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(Row, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[h] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
