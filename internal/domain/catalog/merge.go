package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

// ResolvedTemplate descriptor mergeado con su flag de acceso definitivo.
// Solo Merge asigna HasAccess; nadie más debe calcularlo.
type ResolvedTemplate struct {
	entity.TemplateDescriptor
	HasAccess bool
}

// Merge reconcilia el catálogo integrado, la lista remota (posiblemente
// vacía, p. ej. offline) y el entitlement set local en la lista única de
// plantillas con HasAccess autoritativo.
//
// Precedencia: lo remoto gana campo a campo, lo integrado rellena los
// huecos. Orden estable: integradas en orden de catálogo, remotas sin
// match al final en orden de llegada. Invariante: exactamente una
// plantilla del resultado queda marcada como default.
//
// Regla de acceso:
//   - no premium            -> siempre true
//   - opinión remota (bool) -> gana el servidor, incluso sobre una
//     compra local completada (política documentada en DESIGN.md)
//   - sin opinión remota    -> true sii el id está en el entitlement set
func Merge(remote []RemoteTemplate, entitled map[string]struct{}) []ResolvedTemplate {
	merged := ListBuiltIn()
	index := make(map[string]int, len(merged))
	for i, d := range merged {
		index[d.ID] = i
	}

	// Opinión explícita del servidor por id (la última gana).
	opinions := make(map[string]*bool)
	// Última designación remota explícita de plantilla default.
	defaultID := ""

	for _, r := range remote {
		id := r.ResolvedID()
		if id == "" {
			continue
		}
		if r.HasAccess != nil {
			v := *r.HasAccess
			opinions[id] = &v
		}
		if r.IsDefault != nil && *r.IsDefault {
			defaultID = id
		}
		if i, ok := index[id]; ok {
			merged[i] = overlay(merged[i], r)
		} else {
			// Sin match local: el registro remoto se sostiene solo.
			merged = append(merged, overlay(entity.TemplateDescriptor{ID: id}, r))
			index[id] = len(merged) - 1
		}
	}

	merged = enforceSingleDefault(merged, defaultID)

	out := make([]ResolvedTemplate, 0, len(merged))
	for _, d := range merged {
		d = Normalize(d)
		out = append(out, ResolvedTemplate{
			TemplateDescriptor: d,
			HasAccess:          resolveAccess(d, opinions[d.ID], entitled),
		})
	}
	return out
}

// enforceSingleDefault garantiza el invariante del catálogo mergeado:
// exactamente una plantilla default. Gana la designación remota más
// reciente; sin designación, la primera marcada en orden estable; si
// el remoto retiró todas las marcas, la estándar integrada.
func enforceSingleDefault(list []entity.TemplateDescriptor, designated string) []entity.TemplateDescriptor {
	winner := -1
	if designated != "" {
		for i := range list {
			if list[i].ID == designated {
				winner = i
				break
			}
		}
	}
	if winner == -1 {
		for i := range list {
			if list[i].IsDefault {
				winner = i
				break
			}
		}
	}
	if winner == -1 {
		for i := range list {
			if list[i].ID == DefaultTemplateID {
				winner = i
				break
			}
		}
	}
	for i := range list {
		list[i].IsDefault = i == winner
	}
	return list
}

func resolveAccess(d entity.TemplateDescriptor, opinion *bool, entitled map[string]struct{}) bool {
	if !*d.IsPremium {
		return true
	}
	if opinion != nil {
		return *opinion
	}
	_, ok := entitled[d.ID]
	return ok
}

// overlay pisa sobre base todos los campos presentes en el registro
// remoto. Colores se coercen aquí (triple válido o nada) para que el
// Theme Resolver nunca vea basura.
func overlay(base entity.TemplateDescriptor, r RemoteTemplate) entity.TemplateDescriptor {
	if r.Name != nil {
		base.Name = *r.Name
	}
	if r.Description != nil {
		base.Description = *r.Description
	}
	if r.Category != nil {
		base.Category = *r.Category
		// La categoría remota redefine el tier: el derivado de premium
		// se recalcula en Normalize salvo override remoto explícito.
		if r.IsPremium == nil {
			base.IsPremium = nil
		}
	}
	if r.IsPremium != nil {
		v := *r.IsPremium
		base.IsPremium = &v
	}
	if r.IsDefault != nil {
		base.IsDefault = *r.IsDefault
	}
	if r.Price != nil {
		base.Price = decimal.NewFromFloat(*r.Price)
	}

	for role, triple := range r.Colors {
		c, ok := coerceRGB(triple)
		if !ok {
			continue
		}
		switch strings.ToLower(role) {
		case "primary":
			base.Colors.Primary = c
		case "secondary":
			base.Colors.Secondary = c
		case "accent":
			base.Colors.Accent = c
		case "text":
			base.Colors.Text = c
		case "border":
			base.Colors.Border = c
		}
	}

	for role, font := range r.Fonts {
		if strings.TrimSpace(font) == "" {
			continue
		}
		switch strings.ToLower(role) {
		case "title":
			base.Fonts.Title = font
		case "body":
			base.Fonts.Body = font
		case "accent":
			base.Fonts.Accent = font
		}
	}

	base.Layout = overlayLayout(base.Layout, r.Layout)
	return base
}

// overlayLayout aplica los flags remotos sobre los locales. Los flags
// conocidos se tipan; cualquier flag desconocido se conserva en Extra
// (el set es abierto y aditivo, nada se descarta).
func overlayLayout(base entity.LayoutFlags, remote map[string]any) entity.LayoutFlags {
	if len(remote) == 0 {
		return base
	}
	// El map Extra del catálogo integrado es compartido: clonar antes de escribir.
	if base.Extra != nil {
		clone := make(map[string]any, len(base.Extra))
		for k, v := range base.Extra {
			clone[k] = v
		}
		base.Extra = clone
	}
	for key, raw := range remote {
		switch key {
		case "showLogo":
			if v, ok := coerceBool(raw); ok {
				base.ShowLogo = v
			}
		case "showWatermark":
			if v, ok := coerceBool(raw); ok {
				base.ShowWatermark = v
			}
		case "watermarkText":
			if v, ok := raw.(string); ok {
				base.WatermarkText = v
			}
		case "headerStyle":
			if v, ok := raw.(string); ok {
				base.HeaderStyle = v
			}
		case "hasDualAddress":
			if v, ok := coerceBool(raw); ok {
				base.HasDualAddress = v
			}
		case "hasWave":
			if v, ok := coerceBool(raw); ok {
				base.HasWave = v
			}
		default:
			if base.Extra == nil {
				base.Extra = make(map[string]any)
			}
			base.Extra[key] = raw
		}
	}
	return base
}

func coerceBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
	}
	return false, false
}

func coerceRGB(triple []int) (*entity.RGB, bool) {
	if len(triple) != 3 {
		return nil, false
	}
	clamp := func(n int) uint8 {
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return &entity.RGB{R: clamp(triple[0]), G: clamp(triple[1]), B: clamp(triple[2])}, true
}
