package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/documents"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/entitlement"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/templates"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/render"
	apphttp "github.com/Mekhanofficial/ledgerly-app-sub001/internal/interfaces/http"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/currency"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memKV almacén clave/valor en memoria.
type memKV struct {
	data map[string][]byte
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

// fakePDF generador PDF de prueba.
type fakePDF struct{}

func (fakePDF) GenerateDocumentPDF(
	context.Context,
	entity.DocumentInput,
	render.Theme,
	render.MonetarySummary,
	*currency.Formatter,
) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// buildTestApp construye una aplicación Fiber con las rutas reales y los
// casos de uso cableados sobre persistencia en memoria, sin backend remoto.
func buildTestApp() *fiber.App {
	store := entitlement.NewStore(&memKV{data: make(map[string][]byte)}, logger.Nop())
	templatesUC := templates.NewUseCase(nil, store, logger.Nop())
	documentsUC := documents.NewUseCase(templatesUC, fakePDF{}, documents.Config{
		CurrencyCode: "USD",
		Locale:       "en",
	}, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		TemplatesUC: templatesUC,
		DocumentsUC: documentsUC,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const validRenderBody = `{
	"number": "FAC-0042",
	"issue_date": "2026-03-15",
	"due_date": "2026-04-14",
	"business_name": "Acme Studio",
	"customer_name": "Cliente S.A.",
	"items": [{"description": "Servicio", "quantity": 2, "unit_price": 10}],
	"amount": 20,
	"template_style": "standard"
}`

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/documents/render
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderDocument_OK(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/documents/render", validRenderBody)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "FAC-0042")
	assert.Contains(t, string(html), "$20.00")
}

func TestRenderDocument_BodyInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/documents/render", `{no es json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRenderDocument_SinCamposRequeridos(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/documents/render", `{"number": ""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRenderDocument_FechaMalformada(t *testing.T) {
	app := buildTestApp()
	body := strings.Replace(validRenderBody, "2026-03-15", "15/03/2026", 1)
	resp := doJSON(t, app, http.MethodPost, "/api/documents/render", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRenderDocument_PremiumSinAccesoRespondeOK(t *testing.T) {
	// Pedir una plantilla premium sin comprarla no es un error HTTP: el
	// documento sale con el estilo estándar.
	app := buildTestApp()
	body := strings.Replace(validRenderBody, `"standard"`, `"luxury"`, 1)
	resp := doJSON(t, app, http.MethodPost, "/api/documents/render", body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "deco-brandbar")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/documents/pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderDocumentPDF_OK(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/documents/pdf", validRenderBody)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="factura_FAC-0042.pdf"`)

	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestRenderDocumentPDF_SinCamposRequeridos(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/documents/pdf", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
