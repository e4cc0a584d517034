package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/locagri/internal/client/client"
	"github.com/dmitrijs2005/locagri/internal/client/config"
	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/locagri/internal/client/router"
	"github.com/dmitrijs2005/locagri/internal/client/services"
	"github.com/dmitrijs2005/locagri/internal/client/session"
	"github.com/dmitrijs2005/locagri/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const connectivityCheckInterval = 15 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	store  client.Client

	machine   *session.Machine
	router    *router.Router
	images    *services.ImageResolver
	directory *services.DirectoryLoader
	plots     services.LandPlotAggregator
	http      *http.Client

	reader *bufio.Reader
	out    io.Writer

	mu        sync.Mutex
	mode      Mode
	operators *services.Result[[]models.Operator]

	stopSessionWatch func()
}

// NewApp opens the local session database, connects to the remote store
// and assembles the screens.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store, err := client.NewGRPCClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, sessions.NewSQLiteRepository(db), logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(ctx, cfg, logger, store, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(ctx context.Context, cfg *config.Config, logger logging.Logger, store client.Client, in io.Reader, out io.Writer) *App {
	images := services.NewImageResolver(store, cfg, logger)
	a := &App{
		config:    cfg,
		logger:    logger,
		store:     store,
		machine:   session.NewMachine(store, logger),
		router:    router.New(ctx),
		images:    images,
		directory: services.NewDirectoryLoader(store, images, cfg, logger),
		plots:     services.NewLandPlotAggregator(store, cfg, logger),
		http:      &http.Client{Timeout: cfg.RequestTimeout},
		reader:    bufio.NewReader(in),
		out:       out,
	}
	a.stopSessionWatch = a.machine.Subscribe(func(session.Snapshot) { a.dropOperators() })
	return a
}

// dropOperators forgets the cached directory so the next screen that
// needs it fetches again under the current session.
func (a *App) dropOperators() {
	a.mu.Lock()
	a.operators = nil
	a.mu.Unlock()
}

// Run resolves the session and serves the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.machine.Start(ctx)
	stop := a.router.Follow(a.machine)
	defer stop()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartConnectivityWatcher(watchCtx, connectivityCheckInterval)

	printlnFn("Welcome to LocAgri CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close() {
	a.stopSessionWatch()
	a.router.Close()
	a.machine.Close()

	var errs []error
	errs = append(errs, a.store.Close())
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if err := errors.Join(errs...); err != nil {
		a.logger.Warn(context.Background(), "error closing resources", "error", err)
	}
}

func (a *App) flow() router.Flow {
	return a.router.Flow()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// StartConnectivityWatcher pings the store every interval until ctx ends
// and records whether it answered.
func (a *App) StartConnectivityWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.checkConnectivity(ctx)
	for {
		select {
		case <-ticker.C:
			a.checkConnectivity(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkConnectivity(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.store.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

func (a *App) status() string {
	s := a.router.Flow().String() + "/" + string(a.router.Screen())
	if m := a.currentMode(); m != "" {
		s += " " + string(m)
	}
	return "(" + s + ")"
}
