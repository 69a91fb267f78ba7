package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

// PurchaseTemplateRequest body para POST /api/templates/:id/purchase.
// Price opcional: si no viene se usa el precio de catálogo.
type PurchaseTemplateRequest struct {
	Price         *decimal.Decimal `json:"price,omitempty"`
	PaymentMethod string           `json:"payment_method"`
}

// TemplateResponse plantilla resuelta para el picker de la UI, con el
// HasAccess definitivo calculado por el Merge Resolver.
type TemplateResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	Colors      map[string][]int  `json:"colors"`
	Fonts       map[string]string `json:"fonts"`
	Layout      map[string]any    `json:"layout"`
	Price       decimal.Decimal   `json:"price"`
	IsPremium   bool              `json:"is_premium"`
	IsDefault   bool              `json:"is_default"`
	HasAccess   bool              `json:"has_access"`
}

// NewTemplateResponse proyecta una plantilla resuelta al shape HTTP.
func NewTemplateResponse(r catalog.ResolvedTemplate) TemplateResponse {
	premium := false
	if r.IsPremium != nil {
		premium = *r.IsPremium
	}
	return TemplateResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Colors:      colorsMap(r.Colors),
		Fonts:       fontsMap(r.Fonts),
		Layout:      layoutMap(r.Layout),
		Price:       r.Price,
		IsPremium:   premium,
		IsDefault:   r.IsDefault,
		HasAccess:   r.HasAccess,
	}
}

func colorsMap(c entity.ColorSet) map[string][]int {
	out := make(map[string][]int)
	put := func(role string, rgb *entity.RGB) {
		if rgb != nil {
			out[role] = []int{int(rgb.R), int(rgb.G), int(rgb.B)}
		}
	}
	put("primary", c.Primary)
	put("secondary", c.Secondary)
	put("accent", c.Accent)
	put("text", c.Text)
	put("border", c.Border)
	return out
}

func fontsMap(f entity.FontSet) map[string]string {
	out := make(map[string]string)
	if f.Title != "" {
		out["title"] = f.Title
	}
	if f.Body != "" {
		out["body"] = f.Body
	}
	if f.Accent != "" {
		out["accent"] = f.Accent
	}
	return out
}

// layoutMap aplana los flags tipados y los Extra en un solo objeto,
// el mismo shape abierto que maneja el backend.
func layoutMap(l entity.LayoutFlags) map[string]any {
	out := make(map[string]any, 6+len(l.Extra))
	out["showLogo"] = l.ShowLogo
	out["showWatermark"] = l.ShowWatermark
	if l.WatermarkText != "" {
		out["watermarkText"] = l.WatermarkText
	}
	if l.HeaderStyle != "" {
		out["headerStyle"] = l.HeaderStyle
	}
	out["hasDualAddress"] = l.HasDualAddress
	out["hasWave"] = l.HasWave
	for k, v := range l.Extra {
		out[k] = v
	}
	return out
}
