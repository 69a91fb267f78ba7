package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una compra local. Solo "completed" cuenta para entitlement.
const (
	PurchaseStatusCompleted = "completed"
	PurchaseStatusPending   = "pending"
	PurchaseStatusFailed    = "failed"
)

// PurchaseRecord registro del ledger local de compras de plantillas.
// TemplateID es una referencia al catálogo, no ownership. Se persiste
// como JSON en el almacén clave/valor del dispositivo.
type PurchaseRecord struct {
	TemplateID    string          `json:"templateId"`
	Price         decimal.Decimal `json:"price"`
	PaymentMethod string          `json:"paymentMethod"`
	PurchasedAt   time.Time       `json:"purchasedAt"`
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
}

// AccessCache lista de acceso cacheada localmente.
// Esquema persistido: {"templates": [...], "lastUpdated": ISO8601}.
type AccessCache struct {
	Templates   []string `json:"templates"`
	LastUpdated string   `json:"lastUpdated"`
}
