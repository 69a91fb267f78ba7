package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/render"
)

var allVariants = []render.StyleVariant{
	render.VariantStandard,
	render.VariantLetterhead,
	render.VariantBrandBar,
	render.VariantThinLine,
	render.VariantAsymmetric,
	render.VariantFlow,
	render.VariantFloating,
	render.VariantTerminal,
	render.VariantRounded,
	render.VariantPrism,
	render.VariantBrutal,
}

func TestParseVariant_ClavesConocidas(t *testing.T) {
	for _, v := range allVariants {
		got, ok := render.ParseVariant(string(v))
		assert.True(t, ok, "variante %q debería reconocerse", v)
		assert.Equal(t, v, got)
	}
}

func TestParseVariant_NormalizaMayusculasYEspacios(t *testing.T) {
	got, ok := render.ParseVariant("  Brand-Bar ")
	assert.True(t, ok)
	assert.Equal(t, render.VariantBrandBar, got)
}

func TestParseVariant_ClaveDesconocida(t *testing.T) {
	got, ok := render.ParseVariant("neon")
	assert.False(t, ok)
	assert.Equal(t, render.VariantStandard, got)
}

// ── Cadena de resolución de variante ─────────────────────────────────────────

func TestResolveVariant_ClaveDelDocumentoPrimero(t *testing.T) {
	d := entity.TemplateDescriptor{
		ID:     "luxury",
		Layout: entity.LayoutFlags{HeaderStyle: "brand-bar"},
	}
	assert.Equal(t, render.VariantTerminal, render.ResolveVariant("terminal", d),
		"el templateStyle del documento gana sobre el headerStyle del descriptor")
}

func TestResolveVariant_CaeAlHeaderStyleDelDescriptor(t *testing.T) {
	d := entity.TemplateDescriptor{
		ID:     "luxury",
		Layout: entity.LayoutFlags{HeaderStyle: "brand-bar"},
	}
	assert.Equal(t, render.VariantBrandBar, render.ResolveVariant("", d))
}

func TestResolveVariant_CaeAlIdDelDescriptor(t *testing.T) {
	// terminal es a la vez id de plantilla y clave de variante.
	d := entity.TemplateDescriptor{ID: "terminal"}
	assert.Equal(t, render.VariantTerminal, render.ResolveVariant("", d))
}

func TestResolveVariant_TodoDesconocidoDegradaAEstandar(t *testing.T) {
	d := entity.TemplateDescriptor{
		ID:     "custom-123",
		Layout: entity.LayoutFlags{HeaderStyle: "hologram"},
	}
	assert.Equal(t, render.VariantStandard, render.ResolveVariant("neon", d))
}

// ── Construcción de decoraciones ─────────────────────────────────────────────

func TestBuildDecoration_EstandarSinFragmentos(t *testing.T) {
	theme := render.ResolveTheme(entity.TemplateDescriptor{ID: "x"})
	deco := render.BuildDecoration(render.VariantStandard, theme)

	assert.Empty(t, deco.HeaderHTML)
	assert.Empty(t, deco.FooterHTML)
	assert.Empty(t, deco.PageStyleAttr)
	assert.Equal(t, 48, deco.PaddingTop)
	assert.Equal(t, 48, deco.PaddingBottom)
}

func TestBuildDecoration_TodasLasVariantesTienenPadding(t *testing.T) {
	theme := render.ResolveTheme(entity.TemplateDescriptor{ID: "x"})
	for _, v := range allVariants {
		deco := render.BuildDecoration(v, theme)
		assert.Greater(t, deco.PaddingTop, 0, "variante %q sin padding superior", v)
		assert.Greater(t, deco.PaddingBottom, 0, "variante %q sin padding inferior", v)
	}
}

func TestBuildDecoration_UsaLosColoresDelTema(t *testing.T) {
	theme := render.Theme{
		Primary:   "rgb(1,2,3)",
		Secondary: "rgb(4,5,6)",
		Accent:    "rgb(7,8,9)",
		Text:      "rgb(10,11,12)",
		Border:    "rgb(13,14,15)",
	}

	brandBar := render.BuildDecoration(render.VariantBrandBar, theme)
	assert.Contains(t, brandBar.HeaderHTML, "rgb(1,2,3)")
	assert.Contains(t, brandBar.HeaderHTML, "rgb(7,8,9)")

	brutal := render.BuildDecoration(render.VariantBrutal, theme)
	assert.Contains(t, brutal.PageStyleAttr, "rgb(10,11,12)",
		"brutal dibuja el marco con el color de texto")
}

func TestBuildDecoration_FlowLlevaOndaYPatron(t *testing.T) {
	theme := render.ResolveTheme(entity.TemplateDescriptor{ID: "x"})
	deco := render.BuildDecoration(render.VariantFlow, theme)

	assert.True(t, strings.Contains(deco.HeaderHTML, "<svg"), "flow dibuja la onda como SVG")
	assert.Contains(t, deco.PageStyleAttr, "radial-gradient")
}

func TestBuildDecoration_Determinista(t *testing.T) {
	theme := render.ResolveTheme(entity.TemplateDescriptor{ID: "x"})
	for _, v := range allVariants {
		assert.Equal(t,
			render.BuildDecoration(v, theme),
			render.BuildDecoration(v, theme),
			"misma variante y tema deben producir la misma decoración: %q", v)
	}
}
