package render

import (
	"fmt"
	"strings"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

// StyleVariant tratamiento de layout con nombre. Tipo enumerado: agregar
// una variante nueva obliga a extender el switch de BuildDecoration.
type StyleVariant string

const (
	VariantStandard   StyleVariant = "standard"
	VariantLetterhead StyleVariant = "letterhead"
	VariantBrandBar   StyleVariant = "brand-bar"
	VariantThinLine   StyleVariant = "thin-line"
	VariantAsymmetric StyleVariant = "asymmetric"
	VariantFlow       StyleVariant = "flow"
	VariantFloating   StyleVariant = "floating"
	VariantTerminal   StyleVariant = "terminal"
	VariantRounded    StyleVariant = "rounded"
	VariantPrism      StyleVariant = "prism"
	VariantBrutal     StyleVariant = "brutal"
)

// Decoration fragmentos de markup y parámetros de página de una variante.
type Decoration struct {
	HeaderHTML    string
	FooterHTML    string
	PaddingTop    int
	PaddingBottom int
	PageStyleAttr string
}

// ParseVariant interpreta una clave de variante. ok=false si la clave
// no corresponde a ninguna variante conocida.
func ParseVariant(key string) (StyleVariant, bool) {
	switch StyleVariant(strings.ToLower(strings.TrimSpace(key))) {
	case VariantStandard:
		return VariantStandard, true
	case VariantLetterhead:
		return VariantLetterhead, true
	case VariantBrandBar:
		return VariantBrandBar, true
	case VariantThinLine:
		return VariantThinLine, true
	case VariantAsymmetric:
		return VariantAsymmetric, true
	case VariantFlow:
		return VariantFlow, true
	case VariantFloating:
		return VariantFloating, true
	case VariantTerminal:
		return VariantTerminal, true
	case VariantRounded:
		return VariantRounded, true
	case VariantPrism:
		return VariantPrism, true
	case VariantBrutal:
		return VariantBrutal, true
	default:
		return VariantStandard, false
	}
}

// ResolveVariant resuelve la variante efectiva: primero el templateStyle
// del documento, luego el headerStyle del descriptor, luego el propio id
// del descriptor. Clave desconocida degrada a la variante estándar.
func ResolveVariant(styleKey string, d entity.TemplateDescriptor) StyleVariant {
	if v, ok := ParseVariant(styleKey); ok {
		return v
	}
	if v, ok := ParseVariant(d.Layout.HeaderStyle); ok {
		return v
	}
	if v, ok := ParseVariant(d.ID); ok {
		return v
	}
	return VariantStandard
}

// BuildDecoration mapea (variante, tema) a los fragmentos concretos de
// cabecera/pie y los parámetros de página. Mapping puro; el switch cubre
// todas las variantes del tipo.
func BuildDecoration(v StyleVariant, t Theme) Decoration {
	switch v {
	case VariantLetterhead:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div class="deco-letterhead" style="border-bottom:3px double %s;padding-bottom:14px;text-align:center;"></div>`,
				t.Primary),
			FooterHTML: fmt.Sprintf(
				`<div style="border-top:1px solid %s;padding-top:10px;text-align:center;font-size:11px;color:%s;"></div>`,
				t.Border, t.Secondary),
			PaddingTop:    56,
			PaddingBottom: 48,
		}
	case VariantBrandBar:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div class="deco-brandbar" style="height:14px;background:linear-gradient(90deg,%s,%s);"></div>`,
				t.Primary, t.Accent),
			FooterHTML: fmt.Sprintf(
				`<div style="height:6px;background:%s;"></div>`, t.Primary),
			PaddingTop:    40,
			PaddingBottom: 40,
		}
	case VariantThinLine:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div style="border-top:1px solid %s;"></div>`, t.Primary),
			PaddingTop:    64,
			PaddingBottom: 64,
		}
	case VariantAsymmetric:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div class="deco-asym" style="width:62%%;height:18px;background:%s;"></div>`+
					`<div class="deco-asym" style="width:34%%;height:18px;background:%s;margin-left:auto;margin-top:-18px;"></div>`,
				t.Primary, t.Accent),
			FooterHTML: fmt.Sprintf(
				`<div style="width:34%%;height:10px;background:%s;margin-left:auto;"></div>`, t.Primary),
			PaddingTop:    40,
			PaddingBottom: 40,
		}
	case VariantFlow:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<svg class="deco-wave" viewBox="0 0 100 12" preserveAspectRatio="none" `+
					`style="display:block;width:100%%;height:52px;">`+
					`<path d="M0 0 H100 V6 Q75 12 50 6 T0 6 Z" fill="%s"></path></svg>`,
				t.Primary),
			FooterHTML: fmt.Sprintf(
				`<svg viewBox="0 0 100 10" preserveAspectRatio="none" `+
					`style="display:block;width:100%%;height:32px;transform:rotate(180deg);">`+
					`<path d="M0 0 H100 V5 Q75 10 50 5 T0 5 Z" fill="%s"></path></svg>`,
				t.Accent),
			PaddingTop:    24,
			PaddingBottom: 24,
			PageStyleAttr: fmt.Sprintf(
				"background-image:radial-gradient(%s 0.5px, transparent 0.5px);background-size:18px 18px;",
				t.Border),
		}
	case VariantFloating:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div class="deco-card" style="border-radius:12px 12px 0 0;background:%s;height:22px;"></div>`,
				t.Primary),
			PaddingTop:    36,
			PaddingBottom: 48,
			PageStyleAttr: "background:rgb(244,244,245);box-shadow:0 8px 24px rgba(0,0,0,0.12);" +
				"border-radius:12px;",
		}
	case VariantTerminal:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div class="deco-term" style="font-family:monospace;color:%s;border:1px solid %s;`+
					`padding:8px 12px;">$ invoice --render</div>`,
				t.Primary, t.Primary),
			FooterHTML: fmt.Sprintf(
				`<div style="font-family:monospace;color:%s;font-size:11px;">[process exited 0]</div>`,
				t.Secondary),
			PaddingTop:    40,
			PaddingBottom: 40,
			PageStyleAttr: fmt.Sprintf("border:1px solid %s;", t.Primary),
		}
	case VariantRounded:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div style="border-radius:999px;background:%s;height:16px;"></div>`, t.Accent),
			FooterHTML: fmt.Sprintf(
				`<div style="border-radius:999px;background:%s;height:8px;width:40%%;margin:0 auto;"></div>`,
				t.Primary),
			PaddingTop:    44,
			PaddingBottom: 44,
			PageStyleAttr: "border-radius:20px;",
		}
	case VariantPrism:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div class="deco-prism" style="height:20px;background:linear-gradient(135deg,`+
					`%s 0 33%%,%s 33%% 66%%,%s 66%% 100%%);"></div>`,
				t.Primary, t.Secondary, t.Accent),
			FooterHTML: fmt.Sprintf(
				`<div style="height:10px;background:linear-gradient(315deg,%s 0 50%%,%s 50%% 100%%);"></div>`,
				t.Accent, t.Primary),
			PaddingTop:    40,
			PaddingBottom: 40,
		}
	case VariantBrutal:
		return Decoration{
			HeaderHTML: fmt.Sprintf(
				`<div class="deco-brutal" style="border:4px solid %s;background:%s;`+
					`padding:10px 14px;font-weight:900;text-transform:uppercase;">Invoice</div>`,
				t.Text, t.Secondary),
			FooterHTML: fmt.Sprintf(
				`<div style="border-top:4px solid %s;"></div>`, t.Text),
			PaddingTop:    32,
			PaddingBottom: 32,
			PageStyleAttr: fmt.Sprintf("border:4px solid %s;", t.Text),
		}
	case VariantStandard:
		fallthrough
	default:
		// Variante neutra: sin fragmentos, padding estándar.
		return Decoration{PaddingTop: 48, PaddingBottom: 48}
	}
}
