package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SafeDivide calcula a variação percentual de prev para curr.
// Sem base anterior, qualquer valor positivo conta como 100% e zero como 0%.
func SafeDivide(curr, prev decimal.Decimal) decimal.Decimal {
	if prev.IsPositive() {
		return curr.Sub(prev).Div(prev).Mul(hundred)
	}

	if curr.IsPositive() {
		return hundred
	}

	return decimal.Zero
}

// FormatGrowth formata o percentual com duas casas decimais
func FormatGrowth(growth decimal.Decimal) string {
	return growth.StringFixed(2)
}
