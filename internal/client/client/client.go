package client

import (
	"context"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/rpc"
)

type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type Client interface {
	Query(ctx context.Context, q rpc.Query) ([]rpc.Row, error)
	GetPublicURL(ctx context.Context, bucket, path string) (string, error)

	SignUp(ctx context.Context, in SignUpInput) (string, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	// GetCurrentSession returns (nil, nil) when nobody is signed in.
	GetCurrentSession(ctx context.Context) (*models.Session, error)
	// OnSessionChange registers fn and returns a function that removes it.
	OnSessionChange(fn func(SessionEvent)) (unsubscribe func())

	Ping(ctx context.Context) error
	Close() error
}
