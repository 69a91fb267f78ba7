package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/dto"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/templates"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain"
)

// TemplateHandler maneja las peticiones HTTP del catálogo de plantillas.
type TemplateHandler struct {
	uc *templates.UseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *templates.UseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List GET /api/templates
// Catálogo resuelto (remoto + integrado + entitlements) para el picker.
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	resolved := h.uc.ListTemplates(c.Context())
	out := make([]dto.TemplateResponse, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, dto.NewTemplateResponse(r))
	}
	return c.JSON(out)
}

// GetByID GET /api/templates/:id
// Id desconocido degrada a la plantilla estándar (nunca 404 en lectura).
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	resolved := h.uc.GetTemplate(c.Context(), c.Params("id"))
	return c.JSON(dto.NewTemplateResponse(resolved))
}

// Purchase POST /api/templates/:id/purchase
func (h *TemplateHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PaymentMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payment_method es requerido"})
	}
	rec, err := h.uc.Purchase(c.Context(), c.Params("id"), in.Price, in.PaymentMethod)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la plantilla no existe en el catálogo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo desbloquear la plantilla, intenta de nuevo"})
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}
