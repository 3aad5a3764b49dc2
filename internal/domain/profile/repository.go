package profile

import "context"

// Repository guarda un único perfil (sin multi-mascota).
// Save reemplaza el registro completo: single writer, last write wins.
type Repository interface {
	Get(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
}
