// Package server initializes and runs the main application server.
// It wires the storage backend, the wallet-auth services and the HTTP
// endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/solsocial/internal/logging"
	"github.com/dmitrijs2005/solsocial/internal/server/captcha"
	"github.com/dmitrijs2005/solsocial/internal/server/config"
	"github.com/dmitrijs2005/solsocial/internal/server/httpapi"
	"github.com/dmitrijs2005/solsocial/internal/server/posts"
	"github.com/dmitrijs2005/solsocial/internal/server/shared/db"
	"github.com/dmitrijs2005/solsocial/internal/server/siws"
	"github.com/dmitrijs2005/solsocial/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	postService *posts.Service
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	var rm db.RepositoryManager
	if c.DatabaseDSN == "" {
		logger.Warn(context.Background(), "no database DSN configured, using in-memory store")
		rm = db.NewInMemoryRepositoryManager()
	} else {
		var err error
		rm, err = db.NewPostgresRepositoryManager(c.DatabaseDSN, c.DatabaseTimeout)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	verifier := siws.NewVerifier(c.ChallengeValidityDuration)
	captchaClient := captcha.NewClient(c.CaptchaEndpoint, c.CaptchaSecret, c.CaptchaTimeout)

	us := users.NewService(rm.Users(), verifier, captchaClient, c, logger)
	ps := posts.NewService(rm.Posts(), logger)

	return &App{config: c, logger: logger, userService: us, postService: ps}, nil
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

	s, err := httpapi.NewServer(app.config, app.logger, app.userService, app.postService)

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
