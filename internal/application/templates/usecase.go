// Package templates orquesta la resolución del catálogo de plantillas:
// fetch remoto opcional + catálogo integrado + entitlements locales.
package templates

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/entitlement"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/logger"
)

// UseCase caso de uso del catálogo resuelto.
type UseCase struct {
	remote RemoteCatalog // nil = sin backend configurado (modo offline)
	store  *entitlement.Store
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(remote RemoteCatalog, store *entitlement.Store, log *logger.Logger) *UseCase {
	return &UseCase{remote: remote, store: store, log: log}
}

// ListTemplates devuelve la lista única de plantillas con HasAccess
// autoritativo, para el picker de la UI. Un remoto caído no es error:
// se resuelve solo con el catálogo local.
func (uc *UseCase) ListTemplates(ctx context.Context) []catalog.ResolvedTemplate {
	var remote []catalog.RemoteTemplate
	if uc.remote != nil {
		fetched, err := uc.remote.FetchTemplates(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("catálogo remoto no disponible, se usa el catálogo local")
		} else {
			remote = fetched
		}
	}
	return catalog.Merge(remote, uc.store.LoadEntitlements(ctx))
}

// GetTemplate devuelve una plantilla resuelta por id. Id desconocido
// degrada a la plantilla estándar resuelta, nunca falla.
func (uc *UseCase) GetTemplate(ctx context.Context, id string) catalog.ResolvedTemplate {
	resolved := uc.ListTemplates(ctx)
	for _, r := range resolved {
		if r.ID == id {
			return r
		}
	}
	for _, r := range resolved {
		if r.ID == catalog.DefaultTemplateID {
			return r
		}
	}
	// El catálogo integrado siempre incluye la estándar; este camino es
	// solo para que el compilador tenga retorno.
	return catalog.ResolvedTemplate{TemplateDescriptor: catalog.GetByID(id), HasAccess: true}
}

// Purchase registra la compra local de una plantilla. Si price es nil
// se usa el precio de catálogo. Devuelve domain.ErrTemplateNotFound si
// el id no existe.
func (uc *UseCase) Purchase(
	ctx context.Context,
	templateID string,
	price *decimal.Decimal,
	paymentMethod string,
) (*entity.PurchaseRecord, error) {
	effective := catalog.GetByID(templateID).Price
	if price != nil {
		effective = *price
	}
	return uc.store.RecordPurchase(ctx, templateID, effective, paymentMethod)
}
