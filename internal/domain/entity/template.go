package entity

import "github.com/shopspring/decimal"

// Categorías de plantilla. Los valores legados BASIC e INDUSTRY se
// normalizan a STANDARD en el catálogo (ver catalog.Normalize).
const (
	CategoryStandard = "STANDARD"
	CategoryPremium  = "PREMIUM"
	CategoryElite    = "ELITE"
	CategoryCustom   = "CUSTOM"
)

// RGB triple de color 0-255.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ColorSet roles de color de una plantilla. Un rol nil significa
// "sin definir": el Theme Resolver aplica la paleta por defecto.
type ColorSet struct {
	Primary   *RGB
	Secondary *RGB
	Accent    *RGB
	Text      *RGB
	Border    *RGB
}

// FontSet identificadores de fuente por rol. Vacío = fallback seguro.
type FontSet struct {
	Title  string
	Body   string
	Accent string
}

// LayoutFlags flags de diseño de la plantilla. El conjunto es abierto:
// los flags que el backend agregue y esta versión no conozca se
// conservan en Extra y sobreviven al merge (nunca se descartan).
type LayoutFlags struct {
	ShowLogo       bool
	ShowWatermark  bool
	WatermarkText  string
	HeaderStyle    string
	HasDualAddress bool
	HasWave        bool
	Extra          map[string]any
}

// TemplateDescriptor definición visual declarativa de un estilo de
// documento (colores, fuentes, flags de layout, precio y tier).
//
// HasAccess NO vive aquí: solo el Merge Resolver lo asigna sobre
// ResolvedTemplate; el descriptor estático nunca sabe de entitlements.
type TemplateDescriptor struct {
	ID          string
	Name        string
	Description string
	Category    string
	Colors      ColorSet
	Fonts       FontSet
	Layout      LayoutFlags
	Price       decimal.Decimal
	IsPremium   *bool // nil = derivar de Category al normalizar
	IsDefault   bool
}
