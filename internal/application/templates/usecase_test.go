package templates_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/entitlement"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/templates"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/logger"
)

// fakeRemote catálogo remoto de prueba: lista fija o error fijo.
type fakeRemote struct {
	list []catalog.RemoteTemplate
	err  error
}

func (f *fakeRemote) FetchTemplates(context.Context) ([]catalog.RemoteTemplate, error) {
	return f.list, f.err
}

// memKV almacén clave/valor en memoria.
type memKV struct {
	data map[string][]byte
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func newUseCase(remote templates.RemoteCatalog) *templates.UseCase {
	store := entitlement.NewStore(&memKV{data: make(map[string][]byte)}, logger.Nop())
	return templates.NewUseCase(remote, store, logger.Nop())
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// ── ListTemplates ─────────────────────────────────────────────────────────────

func TestListTemplates_SinRemotoConfigurado(t *testing.T) {
	uc := newUseCase(nil) // modo offline

	resolved := uc.ListTemplates(context.Background())
	assert.Len(t, resolved, len(catalog.ListBuiltIn()),
		"sin backend la lista es el catálogo integrado resuelto")
}

func TestListTemplates_RemotoCaidoNoEsError(t *testing.T) {
	uc := newUseCase(&fakeRemote{err: domain.ErrRemoteUnavailable})

	resolved := uc.ListTemplates(context.Background())
	assert.Len(t, resolved, len(catalog.ListBuiltIn()),
		"un remoto caído degrada a la resolución local, nunca rompe el listado")
}

func TestListTemplates_MezclaRemotoYLocal(t *testing.T) {
	uc := newUseCase(&fakeRemote{list: []catalog.RemoteTemplate{
		{ID: "luxury", Name: strPtr("Luxury 2.0"), HasAccess: boolPtr(true)},
	}})

	resolved := uc.ListTemplates(context.Background())
	for _, r := range resolved {
		if r.ID == "luxury" {
			assert.Equal(t, "Luxury 2.0", r.Name)
			assert.True(t, r.HasAccess, "la opinión remota concede el acceso")
			return
		}
	}
	t.Fatal("luxury no está en la lista resuelta")
}

// ── GetTemplate ───────────────────────────────────────────────────────────────

func TestGetTemplate_IdDesconocidoDegradaAEstandar(t *testing.T) {
	uc := newUseCase(nil)

	r := uc.GetTemplate(context.Background(), "no-existe")
	assert.Equal(t, catalog.DefaultTemplateID, r.ID)
	assert.True(t, r.HasAccess)
}

// ── Purchase ──────────────────────────────────────────────────────────────────

func TestPurchase_DesbloqueaElListadoSiguiente(t *testing.T) {
	uc := newUseCase(nil)
	ctx := context.Background()

	antes := uc.GetTemplate(ctx, "luxury")
	require.False(t, antes.HasAccess)

	rec, err := uc.Purchase(ctx, "luxury", nil, "card")
	require.NoError(t, err)
	assert.Equal(t, "4.99", rec.Price.String(),
		"sin precio explícito se usa el precio de catálogo")

	despues := uc.GetTemplate(ctx, "luxury")
	assert.True(t, despues.HasAccess, "la compra se refleja en la resolución siguiente")
}

func TestPurchase_PrecioExplicitoGana(t *testing.T) {
	uc := newUseCase(nil)
	price := decimal.NewFromFloat(3.49) // precio promocional del checkout

	rec, err := uc.Purchase(context.Background(), "aurora", &price, "paypal")
	require.NoError(t, err)
	assert.Equal(t, "3.49", rec.Price.String())
}

func TestPurchase_IdDesconocido(t *testing.T) {
	uc := newUseCase(nil)
	_, err := uc.Purchase(context.Background(), "no-existe", nil, "card")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestPurchase_ElServidorPuedeRevocarUnaCompraLocal(t *testing.T) {
	// Compra local completada pero el servidor dice hasAccess=false: el
	// servidor es la fuente de verdad.
	uc := newUseCase(&fakeRemote{list: []catalog.RemoteTemplate{
		{ID: "luxury", HasAccess: boolPtr(false)},
	}})
	ctx := context.Background()

	_, err := uc.Purchase(ctx, "luxury", nil, "card")
	require.NoError(t, err)

	assert.False(t, uc.GetTemplate(ctx, "luxury").HasAccess)
}
