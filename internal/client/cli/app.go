// Package cli implements the terminal front of the MDD client: a REPL whose
// command set follows the login state, screen guards mirroring the web
// navigation rules, and interactive prompts for credentials and article
// bodies.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/api"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/config"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/repositories/localstore"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/services"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
	"github.com/thibautlfr-studylab/mdd-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires configuration, local storage, the REST client and the domain
// services into a single interactive application.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store

	auth     services.AuthService
	topics   services.TopicService
	subs     services.SubscriptionService
	posts    services.PostService
	comments services.CommentService
	users    services.UserService

	reader *bufio.Reader
	out    io.Writer

	route    Route
	userName string
}

// NewApp builds the full application graph. The local store is opened and
// migrated, any stored token is restored into the session, and the REST
// client is bound to the session both ways: the session supplies the bearer
// token, and a 401 response empties the session and forces navigation home.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localstore.Open(ctx, cfg.StorePath)
	if err != nil {
		log.Error(ctx, "error opening local store", "error", err)
		return nil, err
	}

	store := session.NewStore(db, log)
	if err := store.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	a := &App{
		config:   cfg,
		log:      log,
		db:       db,
		session:  store,
		auth:     services.NewAuthService(apiClient, store),
		topics:   services.NewTopicService(apiClient, store),
		subs:     services.NewSubscriptionService(apiClient, store),
		posts:    services.NewPostService(apiClient, store),
		comments: services.NewCommentService(apiClient, store),
		users:    services.NewUserService(apiClient, store),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		route:    RouteHome,
	}

	apiClient.SetUnauthorizedHook(func() {
		if err := store.Logout(context.Background()); err != nil {
			log.Error(context.Background(), "error clearing session", "error", err)
		}
		a.route = RouteHome
	})

	store.Subscribe(func(u *models.User) {
		if u != nil {
			a.userName = u.Username
			return
		}
		if a.userName != "" {
			a.userName = ""
			fmt.Fprintln(a.out, "Vous avez été déconnecté.")
		}
	})

	if a.isLoggedIn() {
		a.route = RouteTopics
	}

	return a, nil
}

// Run drives the REPL until the user exits, then closes the local store.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "MDD, where developers meet (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// navigate consults the target route's guard against the current session
// snapshot. On a denial the redirect target becomes the current route and
// the method reports false; the caller must not run the screen's work.
func (a *App) navigate(to Route) bool {
	d := guardFor(to)(a.session.Current())
	if !d.Allow {
		a.route = d.Redirect
		return false
	}
	a.route = to
	return true
}

// showErr prints an error the way the web client surfaces it: the server's
// own message for API errors, a login hint for guarded operations, and the
// error text otherwise.
func (a *App) showErr(err error) {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, apiErr.Message)
	case errors.Is(err, services.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
	default:
		fmt.Fprintln(a.out, err.Error())
	}
}

// Logout drops the session and returns to the home screen.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		a.showErr(err)
		return err
	}
	a.route = RouteHome
	return nil
}
