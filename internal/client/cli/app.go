package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/apiconsole/internal/client/archive"
	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/config"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/client/services"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	state    *services.State
	archiver *archive.Archiver
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	state := services.NewState(services.StateConfig{
		BaseURL:    c.APIBaseURL,
		DB:         db,
		HTTPClient: &http.Client{Timeout: c.RequestTimeout},
		Logger:     log,
	})

	return &App{
		config:   c,
		db:       db,
		state:    state,
		archiver: archive.New(c.Archive(), log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores a persisted session and serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	restored, err := a.state.Init(ctx)
	if err != nil {
		a.log.Warn(ctx, "restoring session failed", "error", err)
	}

	fmt.Fprintln(a.out, "Welcome to the API console (type 'help' for commands)")
	if restored {
		sess, _ := a.state.Session.Session()
		fmt.Fprintf(a.out, "Restored session for %s\n", sess.Identity.Email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.state.Session.IsAuthenticated()
}

func (a *App) role() models.Role {
	return a.state.Session.Role()
}

func (a *App) getStatus() string {
	sess, ok := a.state.Session.Session()
	if !ok {
		return ""
	}
	who := sess.Identity.Email
	if who == "" {
		who = sess.Identity.Name
	}
	return fmt.Sprintf("(%s %s)", who, sess.Identity.Role)
}

func (a *App) orgID() string {
	sess, _ := a.state.Session.Session()
	return sess.OrgID
}
