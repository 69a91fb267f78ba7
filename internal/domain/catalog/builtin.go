package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

// DefaultTemplateID plantilla estándar de fábrica: selección out-of-box
// y destino de todo fallback de lectura.
const DefaultTemplateID = "standard"

func rgb(r, g, b uint8) *entity.RGB {
	return &entity.RGB{R: r, G: g, B: b}
}

// builtIn catálogo estático versionado con la app. Exactamente una
// plantilla (standard) lleva IsDefault. El orden de esta lista es el
// orden estable que conserva el Merge Resolver.
var builtIn = []entity.TemplateDescriptor{
	{
		ID:          "standard",
		Name:        "Estándar",
		Description: "Diseño clásico de factura, limpio y sin adornos.",
		Category:    entity.CategoryStandard,
		Colors: entity.ColorSet{
			Primary:   rgb(37, 99, 235),
			Secondary: rgb(30, 64, 175),
			Accent:    rgb(96, 165, 250),
			Text:      rgb(17, 24, 39),
		},
		Fonts:     entity.FontSet{Title: "Helvetica", Body: "Helvetica", Accent: "Helvetica"},
		Layout:    entity.LayoutFlags{ShowLogo: true, HeaderStyle: "standard"},
		Price:     decimal.Zero,
		IsDefault: true,
	},
	{
		ID:          "classic",
		Name:        "Clásico",
		Description: "Membrete tradicional con línea de firma.",
		Category:    entity.CategoryStandard,
		Colors: entity.ColorSet{
			Primary:   rgb(0, 70, 127),
			Secondary: rgb(51, 65, 85),
			Accent:    rgb(148, 163, 184),
			Text:      rgb(15, 23, 42),
		},
		Fonts:  entity.FontSet{Title: "Georgia", Body: "Georgia", Accent: "Georgia"},
		Layout: entity.LayoutFlags{ShowLogo: true, HeaderStyle: "letterhead", HasDualAddress: true},
		Price:  decimal.Zero,
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Una sola línea fina, máximo espacio en blanco.",
		Category:    entity.CategoryStandard,
		Colors: entity.ColorSet{
			Primary:   rgb(17, 24, 39),
			Secondary: rgb(107, 114, 128),
			Accent:    rgb(209, 213, 219),
			Text:      rgb(17, 24, 39),
		},
		Fonts:  entity.FontSet{Title: "Inter", Body: "Inter", Accent: "Inter"},
		Layout: entity.LayoutFlags{HeaderStyle: "thin-line"},
		Price:  decimal.Zero,
	},
	{
		ID:          "luxury",
		Name:        "Luxury",
		Description: "Barra de marca dorada con marca de agua.",
		Category:    entity.CategoryPremium,
		Colors: entity.ColorSet{
			Primary:   rgb(161, 128, 53),
			Secondary: rgb(41, 37, 36),
			Accent:    rgb(214, 184, 108),
			Text:      rgb(28, 25, 23),
			Border:    rgb(214, 184, 108),
		},
		Fonts: entity.FontSet{Title: "Playfair Display", Body: "Lato", Accent: "Playfair Display"},
		Layout: entity.LayoutFlags{
			ShowLogo: true, ShowWatermark: true, WatermarkText: "LUXURY",
			HeaderStyle: "brand-bar",
		},
		Price: decimal.NewFromFloat(4.99),
	},
	{
		ID:          "executive",
		Name:        "Ejecutivo",
		Description: "Cabecera asimétrica con doble bloque de dirección.",
		Category:    entity.CategoryPremium,
		Colors: entity.ColorSet{
			Primary:   rgb(15, 76, 92),
			Secondary: rgb(19, 42, 48),
			Accent:    rgb(56, 178, 172),
			Text:      rgb(23, 37, 42),
		},
		Fonts:  entity.FontSet{Title: "Montserrat", Body: "Open Sans", Accent: "Montserrat"},
		Layout: entity.LayoutFlags{ShowLogo: true, HeaderStyle: "asymmetric", HasDualAddress: true},
		Price:  decimal.NewFromFloat(4.99),
	},
	{
		ID:          "gallery",
		Name:        "Gallery",
		Description: "Tarjeta flotante con sombra sobre fondo neutro.",
		Category:    entity.CategoryPremium,
		Colors: entity.ColorSet{
			Primary:   rgb(79, 70, 229),
			Secondary: rgb(67, 56, 202),
			Accent:    rgb(165, 180, 252),
			Text:      rgb(30, 27, 75),
		},
		Fonts:  entity.FontSet{Title: "Poppins", Body: "Poppins", Accent: "Poppins"},
		Layout: entity.LayoutFlags{ShowLogo: true, HeaderStyle: "floating"},
		Price:  decimal.NewFromFloat(4.99),
	},
	{
		ID:          "terminal",
		Name:        "Terminal",
		Description: "Monoespaciado estilo consola, verde sobre oscuro.",
		Category:    entity.CategoryPremium,
		Colors: entity.ColorSet{
			Primary:   rgb(22, 163, 74),
			Secondary: rgb(20, 83, 45),
			Accent:    rgb(74, 222, 128),
			Text:      rgb(20, 30, 24),
		},
		Fonts:  entity.FontSet{Title: "JetBrains Mono", Body: "JetBrains Mono", Accent: "JetBrains Mono"},
		Layout: entity.LayoutFlags{HeaderStyle: "terminal"},
		Price:  decimal.NewFromFloat(4.99),
	},
	{
		ID:          "softline",
		Name:        "Softline",
		Description: "Esquinas redondeadas y paneles en tono pastel.",
		Category:    entity.CategoryPremium,
		Colors: entity.ColorSet{
			Primary:   rgb(219, 39, 119),
			Secondary: rgb(157, 23, 77),
			Accent:    rgb(249, 168, 212),
			Text:      rgb(80, 7, 36),
		},
		Fonts:  entity.FontSet{Title: "Nunito", Body: "Nunito", Accent: "Nunito"},
		Layout: entity.LayoutFlags{ShowLogo: true, HeaderStyle: "rounded"},
		Price:  decimal.NewFromFloat(4.99),
	},
	{
		ID:          "aurora",
		Name:        "Aurora",
		Description: "Degradado con onda y patrón de fondo suave.",
		Category:    entity.CategoryElite,
		Colors: entity.ColorSet{
			Primary:   rgb(124, 58, 237),
			Secondary: rgb(30, 27, 75),
			Accent:    rgb(34, 211, 238),
			Text:      rgb(30, 27, 75),
		},
		Fonts: entity.FontSet{Title: "Sora", Body: "Sora", Accent: "Sora"},
		Layout: entity.LayoutFlags{
			ShowLogo: true, HeaderStyle: "flow", HasWave: true,
			Extra: map[string]any{"hasBackgroundPattern": true},
		},
		Price: decimal.NewFromFloat(9.99),
	},
	{
		ID:          "prism",
		Name:        "Prism",
		Description: "Bloques diagonales multicolor sobre blanco.",
		Category:    entity.CategoryElite,
		Colors: entity.ColorSet{
			Primary:   rgb(244, 63, 94),
			Secondary: rgb(251, 146, 60),
			Accent:    rgb(250, 204, 21),
			Text:      rgb(24, 24, 27),
		},
		Fonts: entity.FontSet{Title: "Archivo", Body: "Archivo", Accent: "Archivo Black"},
		Layout: entity.LayoutFlags{
			ShowLogo: true, HeaderStyle: "prism",
			Extra: map[string]any{"hasBackgroundPattern": true},
		},
		Price: decimal.NewFromFloat(9.99),
	},
	{
		ID:          "brutal",
		Name:        "Brutal",
		Description: "Bordes gruesos, tipografía pesada, cero sombras.",
		Category:    entity.CategoryElite,
		Colors: entity.ColorSet{
			Primary:   rgb(0, 0, 0),
			Secondary: rgb(255, 221, 0),
			Accent:    rgb(255, 90, 54),
			Text:      rgb(0, 0, 0),
			Border:    rgb(0, 0, 0),
		},
		Fonts:  entity.FontSet{Title: "Archivo Black", Body: "Space Grotesk", Accent: "Archivo Black"},
		Layout: entity.LayoutFlags{HeaderStyle: "brutal"},
		Price:  decimal.NewFromFloat(9.99),
	},
}
