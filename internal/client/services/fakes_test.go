package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/locagri/internal/rpc"
)

type fakeStore struct {
	mu      sync.Mutex
	queries []rpc.Query
	paths   []string

	queryFn func(q rpc.Query) ([]rpc.Row, error)
	urlFn   func(bucket, path string) (string, error)
}

func (f *fakeStore) Query(_ context.Context, q rpc.Query) ([]rpc.Row, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	return f.queryFn(q)
}

func (f *fakeStore) GetPublicURL(_ context.Context, bucket, path string) (string, error) {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
	return f.urlFn(bucket, path)
}
