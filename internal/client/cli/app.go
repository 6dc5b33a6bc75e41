package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/avidalm/authgate/internal/client/api"
	"github.com/avidalm/authgate/internal/client/config"
	"github.com/avidalm/authgate/internal/client/models"
	"github.com/avidalm/authgate/internal/client/notify"
	"github.com/avidalm/authgate/internal/client/session"
	"github.com/avidalm/authgate/internal/client/tokenstore"
	"github.com/avidalm/authgate/internal/client/validation"
	"github.com/avidalm/authgate/internal/logging"
	"github.com/go-playground/validator/v10"

	_ "modernc.org/sqlite"
)

// gatewayAPI is the slice of the Gateway the CLI uses; a seam for tests.
type gatewayAPI interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, in, out any) error
	Put(ctx context.Context, endpoint string, in, out any) error
}

// sessionAPI is the slice of the session manager the CLI uses.
type sessionAPI interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, user *models.User, pair *models.TokenPair) error
	Logout(ctx context.Context)
	UpdateUser(user *models.User)
	IsAuthenticated(ctx context.Context) bool
	User() *models.User
	Snapshot(ctx context.Context) session.Snapshot
}

type App struct {
	config   *config.Config
	client   api.Client
	gateway  gatewayAPI
	session  sessionAPI
	toasts   *notify.Center
	validate *validator.Validate
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := tokenstore.Open(ctx, cfg.TokenDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	store := tokenstore.NewSQLiteStore(db)
	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)

	app := &App{
		config:   cfg,
		client:   client,
		gateway:  api.NewGateway(client, store, log),
		session:  session.NewManager(client, store, log),
		validate: validation.New(),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	app.toasts = notify.NewCenter(cfg.ToastDuration, app.renderToast)
	return app, nil
}

func (a *App) renderToast(t notify.Toast) {
	fmt.Fprintf(a.out, "[%s] %s\n", t.Type, t.Message)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

// Run restores any persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Initialize(ctx); err != nil {
		return err
	}
	if user := a.session.User(); user != nil {
		a.toasts.Info(fmt.Sprintf("Welcome back, %s!", user.Username))
	}
	a.Root(ctx)
	return nil
}
