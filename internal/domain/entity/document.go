package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineItem línea transaccional de un documento (cantidad y precio unitario).
type DocumentLineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// DocumentInput datos transaccionales de la factura que consume el
// Document Assembler. El feature de facturación es el dueño de estos
// datos; este core solo decide qué mostrar y cómo.
//
// Amount es autoritativo: el total nunca se recalcula aquí. Los campos
// puntero son opcionales; nil dispara la regla de derivación del
// assembler (ver render.DeriveMonetary).
type DocumentInput struct {
	Number    string
	IssueDate time.Time
	DueDate   time.Time

	BusinessName   string
	BusinessDetail string
	CustomerName   string
	CustomerDetail string
	Notes          string

	Items []DocumentLineItem

	Subtotal    *decimal.Decimal // autoritativo si está presente
	TaxRateUsed *decimal.Decimal // porcentaje
	TaxName     string           // vacío = "Tax"
	TaxAmount   *decimal.Decimal // autoritativo si está presente
	Amount      decimal.Decimal  // gran total, siempre presente

	TemplateStyle string // id de plantilla o clave de variante de estilo
}
