// Package sessions persists the signed-in session in the CLI's local
// SQLite file so it can be restored on the next start.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/locagri/internal/client/models"
)

type Repository interface {
	// Load returns (nil, nil) when no session is stored.
	Load(ctx context.Context) (*models.StoredSession, error)
	Save(ctx context.Context, s *models.StoredSession) error
	Clear(ctx context.Context) error
}
