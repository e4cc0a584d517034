package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/dmitrijs2005/locagri/internal/logging"
	pb "github.com/dmitrijs2005/locagri/internal/proto"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var protectedMethods = map[string]struct{}{
	pb.RemoteStore_Query_FullMethodName:        {},
	pb.RemoteStore_GetPublicURL_FullMethodName: {},
	pb.RemoteStore_SignOut_FullMethodName:      {},
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	store       pb.RemoteStoreClient
	sessions    sessions.Repository
	logger      logging.Logger
	listeners   listeners
	now         func() time.Time

	mu      sync.RWMutex
	session *models.Session

	// serializes refreshes so concurrent expired calls rotate the token once
	refreshMu sync.Mutex
}

// NewGRPCClient connects to endpointURL. timeout bounds each call when
// positive. Extra dial options are appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, repo sessions.Repository, logger logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		timeout:     timeout,
		sessions:    repo,
		logger:      logger.With("module", "client"),
		now:         time.Now,
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.store = pb.NewRemoteStoreClient(conn)
	return c, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if _, ok := protectedMethods[method]; !ok {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	token := c.accessToken()
	err := invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	fresh, rerr := c.refresh(ctx, token)
	if rerr != nil {
		return err
	}

	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

func (c *GRPCClient) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

func (c *GRPCClient) current() *models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// refresh rotates the token pair unless another caller already replaced
// stale, in which case the newer access token is returned.
func (c *GRPCClient) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	cur := c.current()
	if cur == nil {
		return "", ErrNoSession
	}
	if cur.AccessToken != stale {
		return cur.AccessToken, nil
	}

	resp, err := c.store.RefreshSession(ctx, &pb.RefreshSessionRequest{RefreshToken: cur.RefreshToken})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			c.logger.Warn(ctx, "session refresh rejected, signing out", "error", err)
			c.dropSession(ctx, Expired)
		}
		return "", mapError(err)
	}

	s := fromRPC(resp, cur.Email)
	c.setSession(ctx, s)
	return s.AccessToken, nil
}

func fromRPC(s *pb.Session, email string) *models.Session {
	if s.GetEmail() != "" {
		email = s.GetEmail()
	}
	out := &models.Session{
		UserID:       s.GetUserId(),
		Email:        email,
		AccessToken:  s.GetAccessToken(),
		RefreshToken: s.GetRefreshToken(),
	}
	if s.GetExpiresAt() != nil {
		out.ExpiresAt = s.GetExpiresAt().AsTime()
	}
	return out
}

// setSession installs s in memory and persists its refresh token.
// Persistence failures are logged only.
func (c *GRPCClient) setSession(ctx context.Context, s *models.Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()

	if c.sessions == nil {
		return
	}
	err := c.sessions.Save(ctx, &models.StoredSession{
		UserID:       s.UserID,
		Email:        s.Email,
		RefreshToken: s.RefreshToken,
		SavedAt:      c.now(),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to persist session", "error", err)
	}
}

func (c *GRPCClient) dropSession(ctx context.Context, kind EventKind) {
	c.mu.Lock()
	had := c.session != nil
	c.session = nil
	c.mu.Unlock()

	if c.sessions != nil {
		if err := c.sessions.Clear(ctx); err != nil {
			c.logger.Error(ctx, "failed to clear stored session", "error", err)
		}
	}
	if had {
		c.listeners.emit(SessionEvent{Kind: kind})
	}
}

func (c *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) Query(ctx context.Context, q rpc.Query) ([]rpc.Row, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	pq, err := rpc.ToProtoQuery(q)
	if err != nil {
		return nil, err
	}
	resp, err := c.store.Query(ctx, &pb.QueryRequest{Query: pq})
	if err != nil {
		return nil, mapError(err)
	}
	return rpc.FromProtoRows(resp.GetRows()), nil
}

func (c *GRPCClient) GetPublicURL(ctx context.Context, bucket, path string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.store.GetPublicURL(ctx, &pb.PublicURLRequest{Bucket: bucket, Path: path})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetUrl(), nil
}

func (c *GRPCClient) SignUp(ctx context.Context, in SignUpInput) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.store.SignUp(ctx, &pb.SignUpRequest{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetUserId(), nil
}

func (c *GRPCClient) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.store.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}

	s := fromRPC(resp, email)
	c.setSession(ctx, s)
	c.listeners.emit(SessionEvent{Kind: SignedIn, Session: c.current()})
	return c.current(), nil
}

// SignOut revokes the refresh token remotely. The local session is kept
// when the remote call fails.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	cur := c.current()
	if cur == nil {
		return nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.store.SignOut(ctx, &pb.SignOutRequest{RefreshToken: cur.RefreshToken}); err != nil {
		return mapError(err)
	}

	c.dropSession(ctx, SignedOut)
	return nil
}

// storedSessionRejected reports whether the server refused a stored refresh
// token outright, as opposed to being unreachable.
func storedSessionRejected(err error) bool {
	switch status.Code(err) {
	case codes.Unauthenticated, codes.InvalidArgument:
		return true
	}
	return false
}

// GetCurrentSession returns the in-memory session, or restores the stored
// one by refreshing it. A stored token the server rejects is discarded.
func (c *GRPCClient) GetCurrentSession(ctx context.Context) (*models.Session, error) {
	if cur := c.current(); cur != nil {
		return cur, nil
	}
	if c.sessions == nil {
		return nil, nil
	}

	stored, err := c.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.store.RefreshSession(ctx, &pb.RefreshSessionRequest{RefreshToken: stored.RefreshToken})
	if err != nil {
		if storedSessionRejected(err) {
			c.logger.Info(ctx, "stored session rejected", "error", err)
			if cerr := c.sessions.Clear(ctx); cerr != nil {
				c.logger.Error(ctx, "failed to clear stored session", "error", cerr)
			}
			return nil, nil
		}
		return nil, mapError(err)
	}

	c.setSession(ctx, fromRPC(resp, stored.Email))
	c.listeners.emit(SessionEvent{Kind: Restored, Session: c.current()})
	return c.current(), nil
}

func (c *GRPCClient) OnSessionChange(fn func(SessionEvent)) func() {
	return c.listeners.add(fn)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.store.Ping(ctx, &emptypb.Empty{})
	return mapError(err)
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
