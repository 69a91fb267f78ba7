package catalog

import "strings"

// RemoteTemplate registro parcial y no confiable que entrega el backend
// de plantillas. Solo los campos presentes en el payload vienen no-nil;
// el Merge Resolver usa esa presencia para decidir qué pisa al catálogo
// integrado.
//
// El id puede llegar como id, _id o templateId según la versión del
// backend; gana el primero no vacío (ver ResolvedID).
type RemoteTemplate struct {
	ID         string
	MongoID    string // campo _id
	TemplateID string

	Name        *string
	Description *string
	Category    *string
	Colors      map[string][]int // triples crudos; se validan al hacer overlay
	Fonts       map[string]string
	Layout      map[string]any
	Price       *float64
	IsPremium   *bool
	IsDefault   *bool
	HasAccess   *bool // opinión explícita del servidor sobre entitlement
}

// ResolvedID id efectivo del registro remoto: id, _id o templateId,
// el primero no vacío. Vacío significa registro inutilizable.
func (r RemoteTemplate) ResolvedID() string {
	for _, candidate := range []string{r.ID, r.MongoID, r.TemplateID} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}
	return ""
}
