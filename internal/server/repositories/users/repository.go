// Package users stores auth identities.
package users

import (
	"context"

	"github.com/dmitrijs2005/locagri/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
