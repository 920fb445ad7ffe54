// Package currency formata valores monetários conforme o país do vendedor.
package currency

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCountry é usado quando o vendedor não informa país ou informa um desconhecido
const DefaultCountry = "NG"

type format struct {
	symbol string
	suffix bool
	tag    language.Tag
}

var formats = map[string]format{
	"NG": {symbol: "₦", tag: language.AmericanEnglish},
	"GH": {symbol: "₵", tag: language.AmericanEnglish},
	"KE": {symbol: "KSh ", tag: language.AmericanEnglish},
	"US": {symbol: "$", tag: language.AmericanEnglish},
	"GB": {symbol: "£", tag: language.BritishEnglish},
	"EU": {symbol: "€", tag: language.English},
	"PL": {symbol: " zł", suffix: true, tag: language.Polish},
}

// Format devolve o valor com símbolo e separador de milhar do país.
// Sem centavos o valor é arredondado para a unidade.
func Format(amount decimal.Decimal, country string, withCents bool) string {
	f, ok := formats[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		f = formats[DefaultCountry]
	}

	places := int32(0)
	if withCents {
		places = 2
	}

	rounded := amount.Round(places)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	number := formatDigits(message.NewPrinter(f.tag), rounded.StringFixed(places))

	if f.suffix {
		return sign + number + f.symbol
	}
	return sign + f.symbol + number
}

// formatDigits aplica os separadores do idioma sobre a representação exata do valor.
// Inteiros que cabem em int64 passam pelo printer; os demais são agrupados de três em três.
func formatDigits(p *message.Printer, fixed string) string {
	integer, fraction, _ := strings.Cut(fixed, ".")

	grouped := ""
	if n, err := strconv.ParseInt(integer, 10, 64); err == nil {
		grouped = p.Sprintf("%d", n)
	} else {
		grouped = groupThousands(integer, groupSeparator(p))
	}

	if fraction == "" {
		return grouped
	}
	return grouped + decimalSeparator(p) + fraction
}

func groupSeparator(p *message.Printer) string {
	s := p.Sprintf("%d", 1234567)
	s = strings.TrimPrefix(s, "1")
	s, _, _ = strings.Cut(s, "234")
	return s
}

func decimalSeparator(p *message.Printer) string {
	return strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%.1f", 0.5), "0"), "5")
}

func groupThousands(digits, sep string) string {
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
