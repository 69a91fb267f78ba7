// Package entitlement implementa el Entitlement Store: el registro
// local de accesos a plantillas premium (cache de acceso + ledger de
// compras) persistido en el almacén clave/valor del dispositivo.
//
// Es el único dueño del estado persistido; el Merge Resolver y el
// Document Assembler jamás escriben aquí.
package entitlement

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/catalog"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/repository"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/logger"
)

// Claves del almacén clave/valor.
const (
	keyAccessCache = "templates:access"
	keyPurchases   = "templates:purchases"
)

// Store caso de uso del registro local de entitlements. Las escrituras
// son read-modify-write serializadas con un mutex en proceso: dos
// compras de la misma sesión no se pisan. La carrera entre procesos
// queda documentada como aceptable (el servidor es la fuente de verdad
// eventual).
type Store struct {
	mu  sync.Mutex
	kv  repository.KVRepository
	log *logger.Logger
}

// NewStore construye el store inyectando la persistencia (en tests, un
// KV en memoria).
func NewStore(kv repository.KVRepository, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// LoadEntitlements devuelve el entitlement set local: unión de la cache
// de acceso y los templateId del ledger con status completed. Datos
// persistidos corruptos se tratan como vacíos, nunca como error del
// caller.
func (s *Store) LoadEntitlements(ctx context.Context) map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]struct{})
	for _, id := range s.readAccessCache(ctx).Templates {
		set[id] = struct{}{}
	}
	for _, rec := range s.readLedger(ctx) {
		if rec.Status == entity.PurchaseStatusCompleted {
			set[rec.TemplateID] = struct{}{}
		}
	}
	return set
}

// RecordPurchase registra una compra local: valida el id contra el
// catálogo, agrega un registro nuevo al ledger (transactionId fresco,
// status completed) y suma el id a la cache de acceso sin duplicarlo.
// Única operación del core cuyo fallo se muestra al usuario.
func (s *Store) RecordPurchase(
	ctx context.Context,
	templateID string,
	price decimal.Decimal,
	paymentMethod string,
) (*entity.PurchaseRecord, error) {
	if !catalog.Exists(templateID) {
		return nil, domain.ErrTemplateNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec := entity.PurchaseRecord{
		TemplateID:    templateID,
		Price:         price,
		PaymentMethod: paymentMethod,
		PurchasedAt:   now,
		TransactionID: uuid.NewString(),
		Status:        entity.PurchaseStatusCompleted,
	}

	ledger := append(s.readLedger(ctx), rec)
	raw, err := json.Marshal(ledger)
	if err != nil {
		return nil, fmt.Errorf("entitlement: serializar ledger: %w", err)
	}
	if err := s.kv.Set(ctx, keyPurchases, raw); err != nil {
		return nil, fmt.Errorf("entitlement: persistir ledger: %w", err)
	}

	cache := s.readAccessCache(ctx)
	if !contains(cache.Templates, templateID) {
		cache.Templates = append(cache.Templates, templateID)
	}
	cache.LastUpdated = now.Format(time.RFC3339)
	raw, err = json.Marshal(cache)
	if err != nil {
		return nil, fmt.Errorf("entitlement: serializar cache de acceso: %w", err)
	}
	if err := s.kv.Set(ctx, keyAccessCache, raw); err != nil {
		return nil, fmt.Errorf("entitlement: persistir cache de acceso: %w", err)
	}

	return &rec, nil
}

// readAccessCache lee la cache de acceso; corrupta o ausente = vacía.
func (s *Store) readAccessCache(ctx context.Context) entity.AccessCache {
	var cache entity.AccessCache
	raw, err := s.kv.Get(ctx, keyAccessCache)
	if err != nil || len(raw) == 0 {
		return cache
	}
	if err := json.Unmarshal(raw, &cache); err != nil {
		s.log.Warn().Err(err).Str("key", keyAccessCache).Msg("cache de acceso corrupta, se ignora")
		return entity.AccessCache{}
	}
	return cache
}

// readLedger lee el ledger de compras; corrupto o ausente = vacío.
func (s *Store) readLedger(ctx context.Context) []entity.PurchaseRecord {
	raw, err := s.kv.Get(ctx, keyPurchases)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var ledger []entity.PurchaseRecord
	if err := json.Unmarshal(raw, &ledger); err != nil {
		s.log.Warn().Err(err).Str("key", keyPurchases).Msg("ledger de compras corrupto, se ignora")
		return nil
	}
	return ledger
}

func contains(list []string, id string) bool {
	for _, s := range list {
		if s == id {
			return true
		}
	}
	return false
}
