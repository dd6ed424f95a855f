package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricematch-service/internal/match/model"
)

func TestKeywords(t *testing.T) {
	opts := model.DefaultOptions()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "brand synonym and memory token",
			in:   "iPhone 13 128GB Black",
			want: []string{"apple", "128gb", "black"},
		},
		{
			name: "stop words and slash memory expansion",
			in:   "Смартфон Samsung Galaxy S23 Ultra 256/512 ГБ Зеленый",
			want: []string{"samsung", "galaxy", "s23", "ultra", "256gb", "512gb", "зеленый"},
		},
		{
			name: "type-c collapses to usb-c",
			in:   "Кабель Type-C 100 Вт",
			want: []string{"кабель", "usb-c"},
		},
		{
			name: "emoji and punctuation stripped",
			in:   "🎧 AirPods Pro!!!",
			want: []string{"airpods", "pro"},
		},
		{
			name: "cyrillic memory unit",
			in:   "Honor X8 128ГБ",
			want: []string{"honor", "128gb"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keywords(tt.in, opts))
		})
	}
}

func TestKeywordsDropsShortAndNumeric(t *testing.T) {
	opts := model.DefaultOptions()
	got := Keywords("Pro 13 128gb x", opts)
	assert.Equal(t, []string{"pro", "128gb"}, got)
}

func TestKeywordsDeterministicOrder(t *testing.T) {
	opts := model.DefaultOptions()
	first := Keywords("Samsung Galaxy Z Fold 5 256/512 ГБ", opts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Keywords("Samsung Galaxy Z Fold 5 256/512 ГБ", opts))
	}
}

func TestCleanModes(t *testing.T) {
	assert.Equal(t, "iPhone 15 Pro Blue", CleanLoose("iPhone 15 Pro 🇯🇵 Blue ✅"))
	// light-режим сохраняет скобки для извлечения цвета
	assert.Equal(t, "iPad Air (Blue)", CleanLight("iPad Air (Blue) 💙"))
}
