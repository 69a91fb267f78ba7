// Package documents ensambla el documento final: plantilla resuelta +
// tema + decoración + datos transaccionales de la factura.
package documents

import (
	"context"
	"fmt"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/templates"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/render"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/currency"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/logger"
)

// Config preferencias de formato de la cuenta.
type Config struct {
	CurrencyCode string
	Locale       string
}

// UseCase caso de uso de render de documentos.
type UseCase struct {
	templates *templates.UseCase
	pdf       DocumentPDFGenerator
	cfg       Config
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(tpl *templates.UseCase, pdf DocumentPDFGenerator, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{templates: tpl, pdf: pdf, cfg: cfg, log: log}
}

// resolveStyling resuelve plantilla, tema y variante para un documento.
// Una plantilla premium sin acceso degrada en silencio al estilo
// estándar: el contenido premium nunca se filtra, y el documento
// siempre se puede seguir viendo.
func (uc *UseCase) resolveStyling(ctx context.Context, in entity.DocumentInput) (render.Theme, render.Decoration) {
	resolved := uc.templates.GetTemplate(ctx, in.TemplateStyle)
	if !resolved.HasAccess {
		uc.log.Warn().
			Str("template", resolved.ID).
			Msg("plantilla premium sin acceso, se renderiza con la estándar")
		standard := uc.templates.GetTemplate(ctx, catalog.DefaultTemplateID)
		theme := render.ResolveTheme(standard.TemplateDescriptor)
		return theme, render.BuildDecoration(render.VariantStandard, theme)
	}

	theme := render.ResolveTheme(resolved.TemplateDescriptor)
	variant := render.ResolveVariant(in.TemplateStyle, resolved.TemplateDescriptor)
	return theme, render.BuildDecoration(variant, theme)
}

// RenderHTML produce el documento HTML final (para imprimir/compartir).
func (uc *UseCase) RenderHTML(ctx context.Context, in entity.DocumentInput) (string, error) {
	if len(in.Items) == 0 && in.Amount.IsZero() {
		return "", domain.ErrInvalidInput
	}
	theme, deco := uc.resolveStyling(ctx, in)
	money := currency.NewFormatter(uc.cfg.CurrencyCode, uc.cfg.Locale)
	return render.AssembleDocument(in, theme, deco, money)
}

// RenderPDF produce la rendición PDF del mismo documento, con las
// mismas cifras derivadas que la salida HTML.
func (uc *UseCase) RenderPDF(ctx context.Context, in entity.DocumentInput) (pdf []byte, filename string, err error) {
	if len(in.Items) == 0 && in.Amount.IsZero() {
		return nil, "", domain.ErrInvalidInput
	}
	theme, _ := uc.resolveStyling(ctx, in)
	summary := render.DeriveMonetary(in)
	money := currency.NewFormatter(uc.cfg.CurrencyCode, uc.cfg.Locale)

	pdf, err = uc.pdf.GenerateDocumentPDF(ctx, in, theme, summary, money)
	if err != nil {
		return nil, "", fmt.Errorf("documents: generación PDF: %w", err)
	}
	return pdf, fmt.Sprintf("factura_%s.pdf", in.Number), nil
}
