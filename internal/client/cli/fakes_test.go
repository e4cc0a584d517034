package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/locagri/internal/client/client"
	"github.com/dmitrijs2005/locagri/internal/client/config"
	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/logging"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/fatih/color"
	"google.golang.org/grpc/codes"
)

type fakeClient struct {
	mu sync.Mutex

	session    *models.Session
	signInErr  error
	signUpErr  error
	signOutErr error
	pingErr    error

	signUps   []client.SignUpInput
	queries   []rpc.Query
	queryFn   func(q rpc.Query) ([]rpc.Row, error)
	urls      map[string]string
	closed    bool
	listeners []func(client.SessionEvent)
}

func (f *fakeClient) Query(_ context.Context, q rpc.Query) ([]rpc.Row, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	fn := f.queryFn
	f.mu.Unlock()
	if fn == nil {
		return []rpc.Row{}, nil
	}
	return fn(q)
}

func (f *fakeClient) GetPublicURL(_ context.Context, bucket, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.urls[path]; ok {
		return u, nil
	}
	return "", &client.StoreError{Code: codes.NotFound, Message: "object not found"}
}

func (f *fakeClient) SignUp(_ context.Context, in client.SignUpInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signUps = append(f.signUps, in)
	if f.signUpErr != nil {
		return "", f.signUpErr
	}
	return "new-user", nil
}

func (f *fakeClient) SignIn(_ context.Context, email, _ string) (*models.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	s := &models.Session{UserID: "u1", Email: email}
	f.mu.Lock()
	f.session = s
	f.mu.Unlock()
	return s, nil
}

func (f *fakeClient) SignOut(context.Context) error {
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.mu.Lock()
	f.session = nil
	f.mu.Unlock()
	return nil
}

func (f *fakeClient) GetCurrentSession(context.Context) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, nil
}

func (f *fakeClient) OnSessionChange(fn func(client.SessionEvent)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
	return func() {}
}

func (f *fakeClient) emit(ev client.SessionEvent) {
	f.mu.Lock()
	fns := append([]func(client.SessionEvent){}, f.listeners...)
	f.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func sessionFor(userID string) *models.Session {
	return &models.Session{UserID: userID}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ProbeImages = false
	return cfg
}

// newTestApp builds an App over fc with its session resolved and the
// router following it.
func newTestApp(t *testing.T, fc *fakeClient, cfg *config.Config, input string) (*App, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	a := newApp(context.Background(), cfg, logging.NewDiscardLogger(), fc, strings.NewReader(input), &out)
	a.machine.Start(context.Background())
	stop := a.router.Follow(a.machine)
	t.Cleanup(stop)
	return a, &out
}

func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origST, origGP })

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
}

func operatorRow(cin, last, first string, male bool) rpc.Row {
	return rpc.Row{
		"cin_id":         cin,
		"last_name":      last,
		"first_name":     first,
		"sex":            male,
		"birth_date":     "1980-05-12",
		"created_at":     "2024-01-02T10:00:00Z",
		"type_id":        float64(1),
		"operator_types": map[string]any{"label": "Agriculteur"},
	}
}

// directoryFixture answers the operator query and the land plot query.
func directoryFixture(q rpc.Query) ([]rpc.Row, error) {
	switch q.Table {
	case "operators":
		return []rpc.Row{
			operatorRow("ZZ9", "Zola", "Emile", true),
			operatorRow("AB1", "Alami", "Sara", false),
		}, nil
	case "land_plots":
		if len(q.Filters) == 1 && q.Filters[0].Value == "AB1" {
			return []rpc.Row{
				{"position_id": float64(1), "area_sqm": float64(1500), "positions": map[string]any{"latitude": 33.5, "longitude": -7.6}},
				{"position_id": float64(2), "area_sqm": float64(250.5), "positions": map[string]any{"latitude": 33.7, "longitude": -7.2}},
			}, nil
		}
	}
	return []rpc.Row{}, nil
}
