package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntRU(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"52000", 52000, true},
		{"52 000", 52000, true},
		{"52 000", 52000, true}, // NBSP-разряды из Excel
		{"52 000 ₽", 52000, true},
		{"52000,00", 52000, true},
		{"52000.00", 52000, true},
		{"", 0, false},
		{"цена договорная", 0, false},
		{"-", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseIntRU(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
