package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

// DocumentItemRequest línea de la factura a renderizar.
type DocumentItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// RenderDocumentRequest body para POST /api/documents/render y /pdf.
// number, issue_date, due_date, amount e items son obligatorios; los
// campos de impuestos y subtotal son opcionales (el assembler deriva).
type RenderDocumentRequest struct {
	Number    string `json:"number"`
	IssueDate string `json:"issue_date"` // AAAA-MM-DD
	DueDate   string `json:"due_date"`

	BusinessName   string `json:"business_name"`
	BusinessDetail string `json:"business_detail,omitempty"`
	CustomerName   string `json:"customer_name"`
	CustomerDetail string `json:"customer_detail,omitempty"`
	Notes          string `json:"notes,omitempty"`

	Items []DocumentItemRequest `json:"items"`

	Subtotal    *decimal.Decimal `json:"subtotal,omitempty"`
	TaxRateUsed *decimal.Decimal `json:"tax_rate_used,omitempty"`
	TaxName     string           `json:"tax_name,omitempty"`
	TaxAmount   *decimal.Decimal `json:"tax_amount,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`

	TemplateStyle string `json:"template_style,omitempty"`
}

// ToEntity valida el request y lo convierte a la entidad de dominio.
func (r RenderDocumentRequest) ToEntity() (entity.DocumentInput, error) {
	if r.Number == "" || len(r.Items) == 0 {
		return entity.DocumentInput{}, domain.ErrInvalidInput
	}
	issue, err := time.Parse("2006-01-02", r.IssueDate)
	if err != nil {
		return entity.DocumentInput{}, domain.ErrInvalidInput
	}
	due, err := time.Parse("2006-01-02", r.DueDate)
	if err != nil {
		return entity.DocumentInput{}, domain.ErrInvalidInput
	}

	items := make([]entity.DocumentLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.DocumentLineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	return entity.DocumentInput{
		Number:         r.Number,
		IssueDate:      issue,
		DueDate:        due,
		BusinessName:   r.BusinessName,
		BusinessDetail: r.BusinessDetail,
		CustomerName:   r.CustomerName,
		CustomerDetail: r.CustomerDetail,
		Notes:          r.Notes,
		Items:          items,
		Subtotal:       r.Subtotal,
		TaxRateUsed:    r.TaxRateUsed,
		TaxName:        r.TaxName,
		TaxAmount:      r.TaxAmount,
		Amount:         r.Amount,
		TemplateStyle:  r.TemplateStyle,
	}, nil
}
