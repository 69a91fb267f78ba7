package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/repository"
)

// Querier abstrae pool y tx de pgx: lo mínimo que usan los adaptadores.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.KVRepository = (*LocalKVRepo)(nil)

// LocalKVRepo implementación de KVRepository sobre la tabla local_kv.
// Es el almacén clave/valor del dispositivo donde el Entitlement Store
// guarda la cache de acceso y el ledger de compras como JSON.
//
//	CREATE TABLE local_kv (
//	    key        TEXT PRIMARY KEY,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type LocalKVRepo struct {
	q Querier
}

// NewLocalKVRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocalKVRepository(q Querier) *LocalKVRepo {
	return &LocalKVRepo{q: q}
}

// Get lee el valor de una clave. Clave ausente devuelve (nil, nil).
func (r *LocalKVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM local_kv WHERE key = $1`
	var value []byte
	err := r.q.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kv %q: %w", key, err)
	}
	return value, nil
}

// Set escribe (upsert) el valor de una clave.
func (r *LocalKVRepo) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO local_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}
