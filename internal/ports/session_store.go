package ports

import (
	"context"

	"github.com/bnema/paladins-stats-cli/internal/domain"
)

// SessionStore keeps the last session id across process runs. Load returns
// domain.ErrSessionNotFound when nothing was saved yet.
type SessionStore interface {
	Load(ctx context.Context) (domain.StoredSession, error)
	Save(ctx context.Context, session domain.StoredSession) error
	Clear(ctx context.Context) error
}
