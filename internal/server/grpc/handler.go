package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/locagri/internal/proto"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	user, err := s.auth.SignUp(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "User registered", "user_id", user.ID)
	return &pb.SignUpResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.Session, error) {
	sess, err := s.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return toSession(sess), nil
}

func (s *GRPCServer) RefreshSession(ctx context.Context, req *pb.RefreshSessionRequest) (*pb.Session, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "missing refresh token")
	}
	sess, err := s.auth.RefreshSession(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return toSession(sess), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*emptypb.Empty, error) {
	if _, ok := userIDFromContext(ctx); !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}
	if req.RefreshToken != "" {
		if err := s.auth.SignOut(ctx, req.RefreshToken); err != nil {
			return nil, toStatus(err)
		}
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Query(ctx context.Context, req *pb.QueryRequest) (*pb.QueryResponse, error) {
	if req.GetQuery() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing query")
	}
	rows, err := s.queries.Run(ctx, rpc.FromProtoQuery(req.GetQuery()))
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := rpc.ToProtoRows(rows)
	if err != nil {
		s.logger.Error(ctx, "failed to encode rows", "table", req.GetQuery().GetTable(), "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.QueryResponse{Rows: out}, nil
}

func (s *GRPCServer) GetPublicURL(ctx context.Context, req *pb.PublicURLRequest) (*pb.PublicURLResponse, error) {
	u, err := s.storage.GetPublicURL(ctx, req.Bucket, req.Path)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PublicURLResponse{Url: u}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func toSession(s *services.Session) *pb.Session {
	out := &pb.Session{
		UserId:       s.UserID,
		Email:        s.Email,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	if !s.ExpiresAt.IsZero() {
		out.ExpiresAt = timestamppb.New(s.ExpiresAt)
	}
	return out
}
