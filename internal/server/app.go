// Package server initializes and runs the application server: it wires the
// configuration, storage, credential services, and the HTTP endpoint, and
// handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dvargas92/fotoapp/internal/logging"
	"github.com/dvargas92/fotoapp/internal/server/auth"
	"github.com/dvargas92/fotoapp/internal/server/config"
	"github.com/dvargas92/fotoapp/internal/server/httpapi"
	"github.com/dvargas92/fotoapp/internal/server/images"
	"github.com/dvargas92/fotoapp/internal/server/shared/db"
	"github.com/dvargas92/fotoapp/internal/server/users"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	tokens       *auth.TokenManager
	userService  *users.Service
	imageService *images.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenManager(c.SecretKey, c.TokenValidityDuration)
	us := users.NewService(m.Users(), tokens)
	is := images.NewService(c)

	return &App{
		config:       c,
		logger:       logger,
		tokens:       tokens,
		userService:  us,
		imageService: is,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService, app.imageService, app.tokens)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
