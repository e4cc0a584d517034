// Package grpc exposes the remote store services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/locagri/internal/logging"
	pb "github.com/dmitrijs2005/locagri/internal/proto"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/models"
	"github.com/dmitrijs2005/locagri/internal/server/services"
	"google.golang.org/grpc"
)

type authSvc interface {
	SignUp(ctx context.Context, email, password, firstName, lastName string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*services.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*services.Session, error)
	SignOut(ctx context.Context, refreshToken string) error
	UserIDFromAccessToken(token string) (string, error)
}

type querySvc interface {
	Run(ctx context.Context, q rpc.Query) ([]rpc.Row, error)
}

type storageSvc interface {
	GetPublicURL(ctx context.Context, bucket, path string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedRemoteStoreServer
	address string
	auth    authSvc
	queries querySvc
	storage storageSvc
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, a authSvc, q querySvc, s storageSvc) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		auth:    a,
		queries: q,
		storage: s,
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterRemoteStoreServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}
