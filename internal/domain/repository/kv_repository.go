package repository

import "context"

// KVRepository puerto del almacén local clave/valor donde el
// Entitlement Store persiste la cache de acceso y el ledger de compras.
// Get devuelve (nil, nil) si la clave no existe.
type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
