package templates

import (
	"context"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
)

// RemoteCatalog puerto del fetch de plantillas del backend. La
// implementación puede fallar o devolver nada: para el caso de uso un
// remoto caído equivale a lista vacía, no a error.
type RemoteCatalog interface {
	FetchTemplates(ctx context.Context) ([]catalog.RemoteTemplate, error)
}
