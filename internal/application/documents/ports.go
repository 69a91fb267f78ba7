package documents

import (
	"context"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/render"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/currency"
)

// DocumentPDFGenerator puerto del generador PDF (implementado con
// Maroto en infrastructure/pdf). Recibe las mismas cifras derivadas que
// el documento HTML para que ambas salidas siempre coincidan.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(
		ctx context.Context,
		in entity.DocumentInput,
		theme render.Theme,
		summary render.MonetarySummary,
		money *currency.Formatter,
	) ([]byte, error)
}
