// Package money formatea montos con la moneda configurada en Settings
// (etiquetas del dashboard; el valor numérico viaja aparte como decimal).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format devuelve el monto con símbolo de moneda, ej. "$ 1,500.00".
// Si code no es un código ISO 4217 válido se antepone tal cual.
func Format(code string, amount decimal.Decimal) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + amount.StringFixed(2)
	}
	value, _ := amount.Float64()
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}
