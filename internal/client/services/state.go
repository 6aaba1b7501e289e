package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

// StateConfig configures a State.
//
// Fields:
//   - BaseURL: API root, e.g. http://localhost:5000/api.
//   - DB: migrated local database holding the session.
//   - HTTPClient: shared transport; http.DefaultClient when nil.
//   - Logger: logging.Nop() when nil.
type StateConfig struct {
	BaseURL    string
	DB         *sql.DB
	HTTPClient *http.Client
	Logger     logging.Logger
}

// State is the console's client state: the session and one slice per
// resource. It starts empty; Init restores a persisted session.
type State struct {
	Session   *SessionStore
	Org       *Org
	Suppliers *Suppliers
	Configs   *Configs
	Users     *Users
	Logs      *Logs
	Search    *Search
}

func NewState(cfg StateConfig) *State {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	auth := client.NewScoped(client.Config{
		BaseAddress: cfg.BaseURL,
		HTTPClient:  cfg.HTTPClient,
		Logger:      log,
	}, "auth")
	session := NewSessionStore(auth, cfg.DB, log)

	base := client.Config{
		BaseAddress: cfg.BaseURL,
		Credentials: session.Token,
		HTTPClient:  cfg.HTTPClient,
		Logger:      log,
	}

	return &State{
		Session:   session,
		Org:       NewOrg(client.NewScoped(base, "orgs"), log),
		Suppliers: NewSuppliers(client.NewScoped(base, "suppliers"), log),
		Configs:   NewConfigs(client.NewScoped(base, "config"), log),
		Users:     NewUsers(client.NewScoped(base, "users"), log),
		Logs:      NewLogs(client.NewScoped(base, "logs"), log),
		Search:    NewSearch(client.NewScoped(base, "search"), log),
	}
}

// Init restores a persisted session, if any, and reports whether one is
// active.
func (s *State) Init(ctx context.Context) (bool, error) {
	return s.Session.Restore(ctx)
}

// Logout ends the session and empties every slice.
func (s *State) Logout(ctx context.Context) error {
	err := s.Session.Logout(ctx)

	s.Org.Reset()
	s.Suppliers.Reset()
	s.Configs.Reset()
	s.Users.Reset()
	s.Logs.Reset()
	s.Search.Reset()

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
