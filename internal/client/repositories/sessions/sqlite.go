package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/dbx"
)

// SQLiteRepository keeps at most one row in the session table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.StoredSession, error) {
	var (
		s       models.StoredSession
		savedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, refresh_token, saved_at FROM session WHERE id = 1`,
	).Scan(&s.UserID, &s.Email, &s.RefreshToken, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	s.SavedAt = time.Unix(savedAt, 0).UTC()
	return &s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s *models.StoredSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, user_id, email, refresh_token, saved_at) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			email = excluded.email,
			refresh_token = excluded.refresh_token,
			saved_at = excluded.saved_at
	`, s.UserID, s.Email, s.RefreshToken, s.SavedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
