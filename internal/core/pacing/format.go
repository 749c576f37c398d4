package pacing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way budgets are written in the workbook,
// e.g. "R$ 1.234,56". ParseBudget reads the result back.
func FormatBRL(d decimal.Decimal) string {
	return brl.Sprintf("R$ %.2f", d.Round(2).InexactFloat64())
}

// FormatVolume renders a delivery count with pt-BR digit grouping.
func FormatVolume(v float64) string {
	return brl.Sprintf("%.0f", v)
}
