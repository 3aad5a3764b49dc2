package healthcheck

import "context"

// Repository guarda una submission por (nombre de perfil, semana).
type Repository interface {
	Get(ctx context.Context, profileName, week string) (Submission, error)
	Save(ctx context.Context, s Submission) error
}
