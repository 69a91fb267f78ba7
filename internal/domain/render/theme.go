// Package render convierte descriptores de plantilla en temas, arma las
// decoraciones por variante de estilo y ensambla el documento final.
// Todo el paquete es puro y nunca lanza: una entrada malformada degrada
// a valores por defecto, porque un documento mal estilado es mejor que
// un render roto.
package render

import (
	"fmt"
	"strings"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

// Paleta y fuentes por defecto para roles ausentes o malformados.
const (
	defaultPrimary   = "rgb(37,99,235)"
	defaultSecondary = "rgb(30,64,175)"
	defaultAccent    = "rgb(96,165,250)"
	defaultText      = "rgb(17,24,39)"
	defaultBorder    = "rgb(229,231,235)"

	defaultTitleFont = "Helvetica"
	defaultBodyFont  = "Helvetica"
)

// Theme tema resuelto listo para render: variables de color como
// strings rgb(r,g,b), familias de fuente con fallback y hints de
// layout derivados.
type Theme struct {
	Primary   string
	Secondary string
	Accent    string
	Text      string
	Border    string

	TitleFont string
	BodyFont  string

	ShowLogo             bool
	ShowWatermark        bool
	WatermarkText        string
	HasBackgroundPattern bool
}

// ResolveTheme resuelve el tema de un descriptor. Función pura, nunca
// falla: cada rol ausente cae a la paleta por defecto.
func ResolveTheme(d entity.TemplateDescriptor) Theme {
	watermark := d.Layout.WatermarkText
	if d.Layout.ShowWatermark && watermark == "" {
		watermark = strings.ToUpper(d.Name)
	}
	return Theme{
		Primary:   cssRGB(d.Colors.Primary, defaultPrimary),
		Secondary: cssRGB(d.Colors.Secondary, defaultSecondary),
		Accent:    cssRGB(d.Colors.Accent, defaultAccent),
		Text:      cssRGB(d.Colors.Text, defaultText),
		Border:    cssRGB(d.Colors.Border, defaultBorder),

		TitleFont: fontOr(d.Fonts.Title, defaultTitleFont),
		BodyFont:  fontOr(d.Fonts.Body, defaultBodyFont),

		ShowLogo:             d.Layout.ShowLogo,
		ShowWatermark:        d.Layout.ShowWatermark,
		WatermarkText:        watermark,
		HasBackgroundPattern: hasBackgroundPattern(d.Layout),
	}
}

// hasBackgroundPattern hint derivado: onda de cabecera o el flag
// abierto hasBackgroundPattern que algunos templates traen en Extra.
func hasBackgroundPattern(l entity.LayoutFlags) bool {
	if l.HasWave {
		return true
	}
	if v, ok := l.Extra["hasBackgroundPattern"].(bool); ok {
		return v
	}
	return false
}

func cssRGB(c *entity.RGB, fallback string) string {
	if c == nil {
		return fallback
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func fontOr(font, fallback string) string {
	if strings.TrimSpace(font) == "" {
		return fallback
	}
	return font
}
