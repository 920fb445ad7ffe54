package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name     string
		curr     string
		prev     string
		expected string
	}{
		{name: "Sem vendas nos dois períodos", curr: "0", prev: "0", expected: "0.00"},
		{name: "Sem base anterior e vendas atuais", curr: "10", prev: "0", expected: "100.00"},
		{name: "Queda total", curr: "0", prev: "10", expected: "-100.00"},
		{name: "Crescimento de 50%", curr: "15", prev: "10", expected: "50.00"},
		{name: "Dízima arredondada", curr: "4", prev: "3", expected: "33.33"},
		{name: "Estável", curr: "7.5", prev: "7.5", expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			growth := SafeDivide(decimal.RequireFromString(tt.curr), decimal.RequireFromString(tt.prev))
			assert.Equal(t, tt.expected, FormatGrowth(growth))
		})
	}
}
