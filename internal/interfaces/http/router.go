package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/documents"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/templates"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TemplatesUC *templates.UseCase
	DocumentsUC *documents.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de plantillas (picker + compra)
	tpl := api.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplatesUC)
	tpl.Get("/", templateHandler.List)
	tpl.Get("/:id", templateHandler.GetByID)
	tpl.Post("/:id/purchase", templateHandler.Purchase)

	// Render de documentos
	docs := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentsUC)
	docs.Post("/render", documentHandler.RenderHTML)
	docs.Post("/pdf", documentHandler.RenderPDF)
}
