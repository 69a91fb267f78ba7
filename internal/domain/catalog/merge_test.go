package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

func entitled(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func findResolved(t *testing.T, list []catalog.ResolvedTemplate, id string) catalog.ResolvedTemplate {
	t.Helper()
	for _, r := range list {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("plantilla %q no está en el resultado del merge", id)
	return catalog.ResolvedTemplate{}
}

// ── Merge offline ─────────────────────────────────────────────────────────────

func TestMerge_SinRemotoDevuelveElCatalogoIntegrado(t *testing.T) {
	resolved := catalog.Merge(nil, entitled())

	assert.Len(t, resolved, len(catalog.ListBuiltIn()))
	assert.Equal(t, catalog.DefaultTemplateID, resolved[0].ID,
		"el orden de catálogo se conserva")

	standard := findResolved(t, resolved, "standard")
	assert.True(t, standard.HasAccess, "las no premium siempre tienen acceso")

	luxury := findResolved(t, resolved, "luxury")
	assert.False(t, luxury.HasAccess, "premium sin compra ni opinión remota = sin acceso")
}

func TestMerge_EntitlementLocalDesbloqueaPremium(t *testing.T) {
	resolved := catalog.Merge(nil, entitled("luxury"))

	assert.True(t, findResolved(t, resolved, "luxury").HasAccess)
	assert.False(t, findResolved(t, resolved, "aurora").HasAccess,
		"el entitlement es por id, no por tier")
}

// ── Precedencia campo a campo ─────────────────────────────────────────────────

func TestMerge_RemotoGanaCampoACampo(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID:    "luxury",
		Name:  strPtr("Luxury 2.0"),
		Price: floatPtr(7.99),
	}}
	resolved := catalog.Merge(remote, entitled())

	luxury := findResolved(t, resolved, "luxury")
	assert.Equal(t, "Luxury 2.0", luxury.Name, "el nombre remoto pisa al local")
	assert.Equal(t, "7.99", luxury.Price.String(), "el precio remoto pisa al local")
	assert.Equal(t, "Barra de marca dorada con marca de agua.", luxury.Description,
		"los campos ausentes en el remoto conservan el valor local")
	require.NotNil(t, luxury.Colors.Primary, "los colores locales sobreviven si el remoto no opina")
}

func TestMerge_CategoriaRemotaRedefineElTier(t *testing.T) {
	// El servidor baja luxury a standard sin decir nada de isPremium: el
	// flag derivado se recalcula de la categoría nueva.
	remote := []catalog.RemoteTemplate{{
		ID:       "luxury",
		Category: strPtr("standard"),
	}}
	resolved := catalog.Merge(remote, entitled())

	luxury := findResolved(t, resolved, "luxury")
	assert.Equal(t, entity.CategoryStandard, luxury.Category)
	assert.False(t, *luxury.IsPremium, "al cambiar la categoría el premium derivado se recalcula")
	assert.True(t, luxury.HasAccess, "no premium = acceso siempre")
}

func TestMerge_CategoriaRemotaLegadaSeNormaliza(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID:       "minimal",
		Category: strPtr("industry"),
	}}
	resolved := catalog.Merge(remote, entitled())
	assert.Equal(t, entity.CategoryStandard, findResolved(t, resolved, "minimal").Category)
}

func TestMerge_ColoresRemotosMalformadosSeDescartan(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID: "standard",
		Colors: map[string][]int{
			"primary": {10, 20},       // triple incompleto: se ignora
			"accent":  {300, -5, 128}, // fuera de rango: se clampea
		},
	}}
	resolved := catalog.Merge(remote, entitled())

	standard := findResolved(t, resolved, "standard")
	require.NotNil(t, standard.Colors.Primary)
	assert.Equal(t, entity.RGB{R: 37, G: 99, B: 235}, *standard.Colors.Primary,
		"un triple incompleto no pisa el color local")
	require.NotNil(t, standard.Colors.Accent)
	assert.Equal(t, entity.RGB{R: 255, G: 0, B: 128}, *standard.Colors.Accent)
}

func TestMerge_FlagsDeLayoutDesconocidosSeConservanEnExtra(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID: "standard",
		Layout: map[string]any{
			"showWatermark": true,
			"futureFlag":    "gradient-v2",
		},
	}}
	resolved := catalog.Merge(remote, entitled())

	standard := findResolved(t, resolved, "standard")
	assert.True(t, standard.Layout.ShowWatermark, "los flags conocidos se tipan")
	assert.Equal(t, "gradient-v2", standard.Layout.Extra["futureFlag"],
		"los flags que esta versión no conoce sobreviven en Extra")
}

func TestMerge_NoMutaElCatalogoIntegrado(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID:     "aurora",
		Layout: map[string]any{"otherFlag": true},
	}}
	catalog.Merge(remote, entitled())

	// Un segundo merge sin remoto debe ver el catálogo de fábrica intacto.
	aurora := findResolved(t, catalog.Merge(nil, entitled()), "aurora")
	_, leaked := aurora.Layout.Extra["otherFlag"]
	assert.False(t, leaked, "el merge no debe escribir en el Extra compartido del catálogo")
}

// ── Registros remotos sin match local ─────────────────────────────────────────

func TestMerge_RemotoSinMatchSeAgregaAlFinal(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID:       "seasonal-2026",
		Name:     strPtr("Seasonal"),
		Category: strPtr("premium"),
		Price:    floatPtr(2.99),
	}}
	resolved := catalog.Merge(remote, entitled())

	require.Len(t, resolved, len(catalog.ListBuiltIn())+1)
	last := resolved[len(resolved)-1]
	assert.Equal(t, "seasonal-2026", last.ID, "los remotos nuevos van al final en orden de llegada")
	assert.True(t, *last.IsPremium)
	assert.False(t, last.HasAccess)
}

func TestMerge_IdentidadRemotaPorCampoAlternativo(t *testing.T) {
	// El backend a veces manda la identidad en _id o templateId.
	remote := []catalog.RemoteTemplate{
		{MongoID: "luxury", Name: strPtr("Vía _id")},
		{TemplateID: "minimal", Name: strPtr("Vía templateId")},
		{}, // sin identidad: se descarta
	}
	resolved := catalog.Merge(remote, entitled())

	assert.Equal(t, "Vía _id", findResolved(t, resolved, "luxury").Name)
	assert.Equal(t, "Vía templateId", findResolved(t, resolved, "minimal").Name)
	assert.Len(t, resolved, len(catalog.ListBuiltIn()), "un registro sin id no agrega nada")
}

// ── Regla de acceso ──────────────────────────────────────────────────────────

func TestMerge_OpinionRemotaGanaSobreEntitlementLocal(t *testing.T) {
	// El servidor niega el acceso aunque exista una compra local
	// completada: el servidor es la fuente de verdad.
	remote := []catalog.RemoteTemplate{{
		ID:        "luxury",
		HasAccess: boolPtr(false),
	}}
	resolved := catalog.Merge(remote, entitled("luxury"))
	assert.False(t, findResolved(t, resolved, "luxury").HasAccess)
}

func TestMerge_OpinionRemotaConcedeSinCompraLocal(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID:        "aurora",
		HasAccess: boolPtr(true),
	}}
	resolved := catalog.Merge(remote, entitled())
	assert.True(t, findResolved(t, resolved, "aurora").HasAccess)
}

func TestMerge_SinOpinionRemotaMandaElEntitlementLocal(t *testing.T) {
	remote := []catalog.RemoteTemplate{{
		ID:   "aurora",
		Name: strPtr("Aurora v2"), // remoto presente pero sin hasAccess
	}}
	resolved := catalog.Merge(remote, entitled("aurora"))
	assert.True(t, findResolved(t, resolved, "aurora").HasAccess)
}

func TestMerge_OpinionNoPremiumSiempreAccesible(t *testing.T) {
	// Incluso si el servidor mandara hasAccess=false para una no premium,
	// la regla "no premium = accesible" tiene prioridad.
	remote := []catalog.RemoteTemplate{{
		ID:        "standard",
		HasAccess: boolPtr(false),
	}}
	resolved := catalog.Merge(remote, entitled())
	assert.True(t, findResolved(t, resolved, "standard").HasAccess)
}

func TestMerge_DefaultRemotoDesplazaALaEstandar(t *testing.T) {
	// El servidor designa otra plantilla como default: la designación
	// remota gana y la marca anterior se retira.
	remote := []catalog.RemoteTemplate{{
		ID:        "luxury",
		IsDefault: boolPtr(true),
	}}
	resolved := catalog.Merge(remote, entitled())

	defaults := 0
	for _, r := range resolved {
		if r.IsDefault {
			defaults++
			assert.Equal(t, "luxury", r.ID, "la default debe ser la designada por el servidor")
		}
	}
	assert.Equal(t, 1, defaults, "el catálogo mergeado debe tener exactamente una default")
}

func TestMerge_DefaultRetiradaReponeLaEstandar(t *testing.T) {
	// El servidor retira la marca de la estándar sin designar otra:
	// el merge repone la default integrada en vez de quedar sin ninguna.
	remote := []catalog.RemoteTemplate{{
		ID:        "standard",
		IsDefault: boolPtr(false),
	}}
	resolved := catalog.Merge(remote, entitled())

	defaults := 0
	for _, r := range resolved {
		if r.IsDefault {
			defaults++
			assert.Equal(t, catalog.DefaultTemplateID, r.ID)
		}
	}
	assert.Equal(t, 1, defaults, "el catálogo mergeado debe tener exactamente una default")
}
