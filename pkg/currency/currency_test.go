package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		country   string
		withCents bool
		expected  string
	}{
		{name: "Nigéria sem centavos", amount: "1234.5", country: "NG", expected: "₦1,235"},
		{name: "Nigéria com centavos", amount: "1234.5", country: "NG", withCents: true, expected: "₦1,234.50"},
		{name: "País vazio usa Nigéria", amount: "100", country: "", expected: "₦100"},
		{name: "País desconhecido usa Nigéria", amount: "100", country: "BR", expected: "₦100"},
		{name: "Gana", amount: "2500000", country: "GH", expected: "₵2,500,000"},
		{name: "Quênia", amount: "999.99", country: "ke", withCents: true, expected: "KSh 999.99"},
		{name: "Estados Unidos", amount: "0", country: "US", withCents: true, expected: "$0.00"},
		{name: "Valor negativo", amount: "-1500", country: "NG", expected: "-₦1,500"},
		{name: "Valor acima de int64 mantém todos os dígitos", amount: "123456789012345678901234.56", country: "US", withCents: true, expected: "$123,456,789,012,345,678,901,234.56"},
		{name: "Centavos exatos em valor grande", amount: "9007199254740993.01", country: "NG", withCents: true, expected: "₦9,007,199,254,740,993.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(decimal.RequireFromString(tt.amount), tt.country, tt.withCents))
		})
	}
}
