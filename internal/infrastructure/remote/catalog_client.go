// Package remote implementa el cliente HTTP del catálogo de plantillas
// del backend. El payload es no confiable y parcial: se decodifica de
// forma tolerante con gjson y solo se conserva lo que esté presente y
// bien tipado.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	apptemplates "github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/templates"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
)

// Tope de lectura del payload remoto.
const maxPayloadBytes = 1 << 20

var _ apptemplates.RemoteCatalog = (*HTTPCatalogClient)(nil)

// HTTPCatalogClient cliente del endpoint de plantillas del backend.
type HTTPCatalogClient struct {
	url    string
	client *http.Client
}

// NewHTTPCatalogClient construye el cliente con su timeout propio.
func NewHTTPCatalogClient(url string, timeout time.Duration) *HTTPCatalogClient {
	return &HTTPCatalogClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchTemplates descarga la lista remota. Cualquier fallo devuelve un
// error envolviendo domain.ErrRemoteUnavailable; para el caller eso
// equivale a lista vacía, no a condición fatal.
func (c *HTTPCatalogClient) FetchTemplates(ctx context.Context) ([]catalog.RemoteTemplate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: payload JSON inválido", domain.ErrMalformedData)
	}
	return ParsePayload(body), nil
}

// ParsePayload decodifica el payload remoto: acepta un array al tope o
// un sobre {"templates": [...]} / {"data": [...]}. Registros sin forma
// de objeto se descartan.
func ParsePayload(body []byte) []catalog.RemoteTemplate {
	root := gjson.ParseBytes(body)
	list := root
	if root.IsObject() {
		list = root.Get("templates")
		if !list.Exists() {
			list = root.Get("data")
		}
	}
	if !list.IsArray() {
		return nil
	}

	var out []catalog.RemoteTemplate
	for _, item := range list.Array() {
		if !item.IsObject() {
			continue
		}
		out = append(out, parseRemoteTemplate(item))
	}
	return out
}

func parseRemoteTemplate(item gjson.Result) catalog.RemoteTemplate {
	rt := catalog.RemoteTemplate{
		ID:         item.Get("id").String(),
		MongoID:    item.Get("_id").String(),
		TemplateID: item.Get("templateId").String(),
	}

	rt.Name = optString(item.Get("name"))
	rt.Description = optString(item.Get("description"))
	rt.Category = optString(item.Get("category"))

	// Solo un boolean explícito cuenta como opinión del servidor.
	rt.HasAccess = optBool(item.Get("hasAccess"))
	rt.IsPremium = optBool(item.Get("isPremium"))
	rt.IsDefault = optBool(item.Get("isDefault"))

	if v := item.Get("price"); v.Type == gjson.Number {
		f := v.Float()
		rt.Price = &f
	}

	if colors := item.Get("colors"); colors.IsObject() {
		rt.Colors = make(map[string][]int)
		colors.ForEach(func(role, triple gjson.Result) bool {
			if !triple.IsArray() {
				return true
			}
			var raw []int
			for _, n := range triple.Array() {
				raw = append(raw, int(n.Int()))
			}
			rt.Colors[role.String()] = raw
			return true
		})
	}

	if fonts := item.Get("fonts"); fonts.IsObject() {
		rt.Fonts = make(map[string]string)
		fonts.ForEach(func(role, font gjson.Result) bool {
			if font.Type == gjson.String {
				rt.Fonts[role.String()] = font.String()
			}
			return true
		})
	}

	if layout, ok := item.Get("layout").Value().(map[string]any); ok {
		rt.Layout = layout
	}

	return rt
}

func optString(v gjson.Result) *string {
	if v.Type != gjson.String {
		return nil
	}
	s := v.String()
	return &s
}

func optBool(v gjson.Result) *bool {
	switch v.Type {
	case gjson.True, gjson.False:
		b := v.Bool()
		return &b
	default:
		return nil
	}
}
