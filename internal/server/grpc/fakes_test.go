package grpc

import (
	"context"

	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/dmitrijs2005/locagri/internal/logging"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/models"
	"github.com/dmitrijs2005/locagri/internal/server/services"
)

type fakeAuth struct {
	signUpErr  error
	signInOut  *services.Session
	signInErr  error
	refreshOut *services.Session
	refreshErr error
	signedOut  []string
	signOutErr error
	tokens     map[string]string
	tokenErr   error
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &models.User{ID: "u-new", Email: email}, nil
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (*services.Session, error) {
	return f.signInOut, f.signInErr
}

func (f *fakeAuth) RefreshSession(ctx context.Context, refreshToken string) (*services.Session, error) {
	return f.refreshOut, f.refreshErr
}

func (f *fakeAuth) SignOut(ctx context.Context, refreshToken string) error {
	f.signedOut = append(f.signedOut, refreshToken)
	return f.signOutErr
}

func (f *fakeAuth) UserIDFromAccessToken(token string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	id, ok := f.tokens[token]
	if !ok {
		return "", common.ErrInvalidToken
	}
	return id, nil
}

type fakeQueries struct {
	got  rpc.Query
	rows []rpc.Row
	err  error
}

func (f *fakeQueries) Run(ctx context.Context, q rpc.Query) ([]rpc.Row, error) {
	f.got = q
	return f.rows, f.err
}

type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) GetPublicURL(ctx context.Context, bucket, path string) (string, error) {
	return f.url, f.err
}

func newServer(a *fakeAuth, q *fakeQueries, s *fakeStorage) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.NewDiscardLogger(), a, q, s)
}
