package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-pooja-site/internal/config"
	handler "github.com/MKhiriev/go-pooja-site/internal/handler/http"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/server"
	"github.com/MKhiriev/go-pooja-site/internal/service"
	"github.com/MKhiriev/go-pooja-site/internal/store"
	"github.com/MKhiriev/go-pooja-site/internal/view"
)

// defaultCloseTimeout bounds the database disconnect when no shutdown
// timeout is configured.
const defaultCloseTimeout = 5 * time.Second

// Connector opens the database. It is called exactly once per Run.
type Connector func(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.Storages, error)

// App is the application context: configuration, logger, templates and,
// once connected, the storages, handler and server.
type App struct {
	cfg    *config.StructuredConfig
	logger *logger.Logger

	connect        Connector
	handlerOptions []handler.Option

	renderer *view.Renderer
	services *service.Services
	router   http.Handler
	storages *store.Storages
	server   server.Server

	mu        sync.Mutex
	state     State
	listening chan struct{}
}

type Option func(*App)

// WithConnector replaces [store.Connect].
func WithConnector(connect Connector) Option {
	return func(a *App) {
		a.connect = connect
	}
}

// WithHandlerOptions passes opts to the HTTP handler.
func WithHandlerOptions(opts ...handler.Option) Option {
	return func(a *App) {
		a.handlerOptions = append(a.handlerOptions, opts...)
	}
}

// New prepares the templates and the router without touching the database.
// It fails when the templates cannot be parsed.
func New(cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) (*App, error) {
	a := &App{
		cfg:       cfg,
		logger:    log,
		connect:   store.Connect,
		state:     StateUninitialized,
		listening: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}

	renderer, err := view.NewRenderer(cfg.Web.ViewsDir, log)
	if err != nil {
		return nil, fmt.Errorf("error loading templates: %w", err)
	}
	a.renderer = renderer

	// filled in by Run once the database is connected, before the first
	// request can arrive
	a.services = &service.Services{}
	h := handler.NewHandler(a.services, a.renderer, *cfg, log, a.handlerOptions...)
	a.router = h.Init()

	return a, nil
}

// Run connects to the database, starts listening and serves until ctx is
// done. The server is shut down first, then the database is disconnected.
func (a *App) Run(ctx context.Context) error {
	if err := a.setState(StateDBConnecting); err != nil {
		return fmt.Errorf("%w: %w", ErrAlreadyStarted, err)
	}

	storages, err := a.connect(ctx, a.cfg.Storage.DB, a.logger)
	if err != nil {
		a.logger.Error().Err(err).Msg("error connecting to database")
		if serr := a.setState(StateFailed); serr != nil {
			return serr
		}
		return fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}
	a.storages = storages
	defer a.closeStorages()

	if err = a.setState(StateDBConnected); err != nil {
		return err
	}

	*a.services = *service.NewServices(storages, *a.cfg, a.logger)
	a.server = server.NewServer(a.router, a.cfg.Server, a.logger)

	if err = a.server.Listen(); err != nil {
		return err
	}

	if err = a.setState(StateListening); err != nil {
		return err
	}
	a.logger.Info().Msgf("Server is listening at port %d...", a.port())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !a.cfg.App.Env.IsProduction() {
		if err = a.renderer.Watch(runCtx); err != nil {
			a.logger.Warn().Err(err).Msg("template reload disabled")
		}
	}

	err = a.server.Run(runCtx)

	if serr := a.setState(StateStopped); serr != nil {
		return serr
	}
	return err
}

// Migrate connects with connect (or [store.Connect] when nil), brings the
// schema up to date and disconnects. It needs no templates.
func Migrate(ctx context.Context, cfg config.DB, log *logger.Logger, connect Connector) error {
	if connect == nil {
		connect = store.Connect
	}

	storages, err := connect(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}
	defer func() {
		if cerr := storages.Close(context.WithoutCancel(ctx)); cerr != nil {
			log.Err(cerr).Msg("error closing database")
		}
	}()

	if err = storages.Migrate(ctx); err != nil {
		return err
	}

	log.Info().Str("backend", string(storages.Backend)).Msg("database schema is up to date")
	return nil
}

// Listening is closed once the app has reached LISTENING.
func (a *App) Listening() <-chan struct{} {
	return a.listening
}

// Addr returns the bound listener address, or nil before LISTENING.
func (a *App) Addr() net.Addr {
	switch a.State() {
	case StateListening, StateStopped:
		return a.server.Addr()
	}
	return nil
}

func (a *App) port() int {
	if tcp, ok := a.server.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return a.cfg.Server.Port
}

func (a *App) closeStorages() {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultCloseTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.storages.Close(ctx); err != nil {
		a.logger.Err(err).Msg("error closing database")
		return
	}
	a.logger.Info().Msg("database connection closed")
}
