package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"digits only", "150", "150"},
		{"comma decimal", "150,00", "150,00"},
		{"dot decimal", "150.00", "150.00"},
		{"strips currency prefix", "R$ 150,00", "150,00"},
		{"strips letters", "12abc34", "1234"},
		{"strips spaces", " 1 2 3 ", "123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"comma separator", "150,00", "150", true},
		{"dot separator", "150.00", "150", true},
		{"integer", "300", "300", true},
		{"cents", "0,05", "0.05", true},
		{"whitespace padded", " 12,5 ", "12.5", true},
		{"empty", "", "0", false},
		{"garbage", "abc", "0", false},
		{"double separator", "1,2,3", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseLocale(tt.input)
			assert.Equal(t, tt.ok, ok)
			require.True(t, d.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", d, tt.expected)
		})
	}
}

func TestParseOrZero(t *testing.T) {
	assert.True(t, ParseOrZero("").IsZero())
	assert.True(t, ParseOrZero("nope").IsZero())
	assert.True(t, ParseOrZero("150,00").Equal(decimal.NewFromInt(150)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 1234,56", Format(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 150,00", Format(decimal.NewFromInt(150)))
	assert.Equal(t, "R$ -35,90", Format(decimal.RequireFromString("-35.9")))
	assert.Equal(t, "0,05", FormatPlain(decimal.RequireFromString("0.05")))
}
