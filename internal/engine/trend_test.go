package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{"zero baseline with activity", "150", "0", "100"},
		{"zero baseline without activity", "0", "0", "0"},
		{"increase", "4600", "3500", "31.43"},
		{"decrease", "3500", "4600", "-23.91"},
		{"unchanged", "1000", "1000", "0"},
		{"doubled", "200", "100", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := Compare(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.previous))

			assert.True(t, tc.PercentChange.Equal(decimal.RequireFromString(tt.want)),
				"percent change = %s, want %s", tc.PercentChange, tt.want)
		})
	}
}

func TestCompareNeverPanicsOnZero(t *testing.T) {
	assert.NotPanics(t, func() {
		Compare(decimal.NewFromInt(-10), decimal.Zero)
	})
}
