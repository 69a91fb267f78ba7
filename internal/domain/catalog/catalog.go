// Package catalog contiene el catálogo estático de plantillas de
// documento y el Merge Resolver que lo reconcilia con el catálogo
// remoto y los entitlements locales.
//
// Todo aquí es puro: sin I/O, sin estado. Las rutas de lectura nunca
// fallan; un id desconocido degrada a la plantilla estándar en vez de
// romper el render.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
)

// NormalizeCategory normaliza la categoría: mayúsculas, alias legados
// (basic, industry) a STANDARD y cualquier valor desconocido a STANDARD.
func NormalizeCategory(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case entity.CategoryStandard, "BASIC", "INDUSTRY":
		return entity.CategoryStandard
	case entity.CategoryPremium:
		return entity.CategoryPremium
	case entity.CategoryElite:
		return entity.CategoryElite
	case entity.CategoryCustom:
		return entity.CategoryCustom
	default:
		return entity.CategoryStandard
	}
}

// Normalize aplica las reglas de lectura del catálogo: categoría
// normalizada, IsPremium derivado de la categoría salvo override
// explícito y precio negativo clampeado a cero. Idempotente.
func Normalize(d entity.TemplateDescriptor) entity.TemplateDescriptor {
	d.Category = NormalizeCategory(d.Category)
	if d.IsPremium == nil {
		premium := d.Category != entity.CategoryStandard
		d.IsPremium = &premium
	}
	if d.Price.IsNegative() {
		d.Price = decimal.Zero
	}
	return d
}

// IsPremium devuelve el flag premium efectivo del descriptor
// (normalizando primero si hace falta).
func IsPremium(d entity.TemplateDescriptor) bool {
	return *Normalize(d).IsPremium
}

// ListBuiltIn devuelve el catálogo integrado, normalizado, en orden de
// catálogo. Cada llamada devuelve copias: el catálogo es inmutable.
func ListBuiltIn() []entity.TemplateDescriptor {
	out := make([]entity.TemplateDescriptor, 0, len(builtIn))
	for _, d := range builtIn {
		out = append(out, Normalize(d))
	}
	return out
}

// GetByID busca un descriptor por id. Si el id no existe degrada a la
// plantilla estándar: un documento mal estilado es mejor que uno roto.
func GetByID(id string) entity.TemplateDescriptor {
	for _, d := range builtIn {
		if d.ID == id {
			return Normalize(d)
		}
	}
	if id != DefaultTemplateID {
		return GetByID(DefaultTemplateID)
	}
	return Normalize(builtIn[0])
}

// Exists informa si el id pertenece al catálogo integrado (sin fallback).
func Exists(id string) bool {
	for _, d := range builtIn {
		if d.ID == id {
			return true
		}
	}
	return false
}
