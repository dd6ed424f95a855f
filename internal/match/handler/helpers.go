package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"pricematch-service/internal/match/model"
)

// optionsFromForm накладывает переопределения из формы на серверные
// дефолты. Таблицы (стоп-слова, синонимы, цвета) формой не правятся.
func optionsFromForm(r *http.Request, base model.Options) model.Options {
	opts := base
	opts.Threshold = toFloat(r.FormValue("threshold"), base.Threshold)
	opts.MaxMatches = atoi(r.FormValue("max_matches"), base.MaxMatches)
	opts.MinPrice = atoi(r.FormValue("min_price"), base.MinPrice)
	opts.MaxPrice = atoi(r.FormValue("max_price"), base.MaxPrice)
	return opts
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

func toFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
