// Package currency formatea montos monetarios con una sola convención
// por documento: mismo código de moneda y mismo locale para todas las
// cifras (líneas, subtotal, impuesto y total).
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxGroupable primer entero que ya no cabe en int64 con margen: por
// encima se renuncia a la agrupación del locale para no perder dígitos.
var maxGroupable = decimal.New(1, 18)

// Formatter formateador de moneda. Crear uno por documento con el
// código y locale de la cuenta y pasarlo a todo el pipeline de render.
type Formatter struct {
	code       string
	symbol     string
	decimalSep string
	printer    *message.Printer
}

// NewFormatter construye el formateador. Un código ISO desconocido no
// falla: degrada a "CODE 1234.50" sin símbolo ni agrupación de locale.
func NewFormatter(code, locale string) *Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return &Formatter{code: code}
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	return &Formatter{
		code:       code,
		symbol:     p.Sprint(currency.Symbol(unit)),
		decimalSep: probeDecimalSep(p),
		printer:    p,
	}
}

// probeDecimalSep descubre el separador decimal del locale formateando
// "1.5" y quedándose con lo que queda entre los dos dígitos.
func probeDecimalSep(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if r := []rune(s); len(r) >= 3 {
		return string(r[1 : len(r)-1])
	}
	return "."
}

// Code código de moneda efectivo del formateador.
func (f *Formatter) Code() string { return f.code }

// Format formatea un monto con el símbolo y la agrupación del locale.
// Dos decimales siempre: la convención de las facturas de la app. El
// monto se imprime desde el decimal exacto, sin pasar por float64, para
// no corromper cifras más allá de la precisión de un double.
func (f *Formatter) Format(v decimal.Decimal) string {
	r := v.Round(2)
	if f.printer == nil {
		return f.code + " " + r.StringFixed(2)
	}

	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	abs := r.Abs()
	entero := abs.Truncate(0)
	if entero.GreaterThanOrEqual(maxGroupable) {
		return sign + f.symbol + abs.StringFixed(2)
	}

	cents := abs.Sub(entero).Mul(decimal.NewFromInt(100)).IntPart()
	grouped := f.printer.Sprint(number.Decimal(entero.IntPart()))
	return sign + f.symbol + grouped + f.decimalSep + fmt.Sprintf("%02d", cents)
}
