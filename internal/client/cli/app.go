package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/config"
	"github.com/redhub-app/redhub-cli/internal/client/credential"
	"github.com/redhub-app/redhub-cli/internal/client/optimistic"
	"github.com/redhub-app/redhub-cli/internal/client/services"
	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.State
	guard    *session.Guard
	notifier *optimistic.Notifier

	auth       services.AuthService
	articles   services.ArticlesService
	favorites  services.FavoritesService
	moderation services.ModerationService
	users      services.UsersService
	stats      services.StatsService
	comments   services.CommentsService

	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := credential.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := credential.NewSQLiteStore(db)

	state := session.NewState(store, log)
	if err := state.Bootstrap(ctx); err != nil {
		return nil, err
	}

	guardCfg := session.DefaultGuardConfig()
	if c.DefaultRedirect != "" {
		guardCfg.DefaultRedirect = c.DefaultRedirect
	}
	guard := session.NewGuard(state, guardCfg, session.DefaultRoutes())

	gw := api.NewHTTPClient(c.GatewayBaseURL, store, log)
	gw.SetTimeout(c.RequestTimeout)

	notifier := optimistic.NewNotifier()

	return &App{
		config:     c,
		log:        log,
		session:    state,
		guard:      guard,
		notifier:   notifier,
		auth:       services.NewAuthService(gw, state, log),
		articles:   services.NewArticlesService(gw, state, notifier),
		favorites:  services.NewFavoritesService(gw, state, notifier),
		moderation: services.NewModerationService(gw, notifier),
		users:      services.NewUsersService(gw, notifier),
		stats:      services.NewStatsService(gw),
		comments:   services.NewCommentsService(gw, state),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Authenticated
}

// visit resolves the guard decision for a view path. When the decision is a
// redirect, it is announced and false is returned; the command then renders
// nothing, mirroring how the web client would navigate away.
func (a *App) visit(ctx context.Context, path string) bool {
	dec := a.guard.Visit(ctx, path)
	if dec.Render {
		return true
	}
	printlnFn(fmt.Sprintf("-> %s", dec.RedirectTo))
	return false
}

// flushNotifications prints and clears pending mutation notifications.
// Called after every command so rollbacks surface promptly.
func (a *App) flushNotifications() {
	for _, n := range a.notifier.Drain() {
		printlnFn(fmt.Sprintf("[%s] %s", n.Level, n.Message))
	}
}
