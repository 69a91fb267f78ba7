package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/documents"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/dto"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain"
)

// DocumentHandler maneja el render de documentos (HTML y PDF).
type DocumentHandler struct {
	uc *documents.UseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *documents.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// RenderHTML POST /api/documents/render
// Devuelve el documento ensamblado como text/html.
func (h *DocumentHandler) RenderHTML(c *fiber.Ctx) error {
	var req dto.RenderDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in, err := req.ToEntity()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "number, issue_date, due_date e items son requeridos"})
	}

	html, err := h.uc.RenderHTML(c.Context(), in)
	if err != nil {
		return mapRenderError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// RenderPDF POST /api/documents/pdf
// Devuelve la rendición PDF del mismo documento.
func (h *DocumentHandler) RenderPDF(c *fiber.Ctx) error {
	var req dto.RenderDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in, err := req.ToEntity()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "number, issue_date, due_date e items son requeridos"})
	}

	pdf, filename, err := h.uc.RenderPDF(c.Context(), in)
	if err != nil {
		return mapRenderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func mapRenderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la factura no tiene líneas ni total"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
