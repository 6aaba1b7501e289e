package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/apiconsole/internal/dbx"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Durable storage keys of the persisted session.
const (
	KeyUser  = "user"
	KeyToken = "token"
	KeyOrgID = "orgId"
)

const RegisterSuccessMessage = "Registration successful! Please login to continue."

// SessionStore knows who the current actor is and which credential
// authorizes their requests. The in-memory session and the metadata table
// are changed together on login and logout.
type SessionStore struct {
	tracker

	api     client.Client
	db      *sql.DB
	log     logging.Logger
	session *models.Session
}

// NewSessionStore binds the store to the unauthenticated auth client and
// the local database.
func NewSessionStore(api client.Client, db *sql.DB, log logging.Logger) *SessionStore {
	return &SessionStore{api: api, db: db, log: sliceLogger(log, "session")}
}

func (s *SessionStore) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Login authenticates, persists user, token and organization id in one
// transaction, then installs the session in memory. On failure any previous
// session is kept. A Logout while the request is in flight wins: nothing is
// stored and ErrSuperseded is returned.
func (s *SessionStore) Login(ctx context.Context, creds models.Credentials) error {
	if err := models.Validate(creds); err != nil {
		return err
	}

	return s.run(ctx, s.log, "login", "Login failed", func(ctx context.Context) (outcome, error) {
		var resp models.LoginResponse
		if err := s.api.Post(ctx, "/login", creds, &resp); err != nil {
			return outcome{}, err
		}

		sess := models.Session{
			Identity: resp.User,
			Token:    resp.Token,
			OrgID:    resp.User.OrganizationScope(),
		}

		// Storage and memory change together under the lock, and not at all
		// once a logout has reset the store.
		return outcome{
			required: true,
			apply: func(uint64) error {
				if err := s.persist(ctx, sess); err != nil {
					return fmt.Errorf("persist session: %w", err)
				}
				s.session = &sess
				return nil
			},
		}, nil
	})
}

// Register creates an organization and its owner. It does not log in.
func (s *SessionStore) Register(ctx context.Context, reg models.Registration) error {
	if err := models.Validate(reg); err != nil {
		return err
	}

	return s.run(ctx, s.log, "register", "Register failed", func(ctx context.Context) (outcome, error) {
		if err := s.api.Post(ctx, "/register", reg, nil); err != nil {
			return outcome{}, err
		}
		return outcome{message: RegisterSuccessMessage}, nil
	})
}

// Restore re-hydrates the in-memory session from storage when memory is
// empty and storage holds both user and token. It reports whether a
// session is present afterwards and never calls the server.
func (s *SessionStore) Restore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		return true, nil
	}

	repo := s.repo()
	rawUser, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return false, err
	}
	token, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return false, err
	}
	if len(rawUser) == 0 || len(token) == 0 {
		return false, nil
	}
	orgID, err := repo.Get(ctx, KeyOrgID)
	if err != nil {
		return false, err
	}

	var identity models.Identity
	if err := json.Unmarshal(rawUser, &identity); err != nil {
		return false, fmt.Errorf("decode stored user: %w", err)
	}

	s.session = &models.Session{Identity: identity, Token: string(token), OrgID: string(orgID)}
	s.log.Debug(ctx, "session restored", "user", identity.Email, "role", identity.Role)
	return true, nil
}

// Logout deletes every stored session key, then clears the in-memory
// session. If the delete fails the session stays as it was.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, KeyUser, KeyToken, KeyOrgID)
	})
	if err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}

	s.session = nil
	s.resetLocked()
	return nil
}

// Token reads the credential from storage. It is the credential supplier of
// every authenticated gateway.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SessionStore) Session() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

func (s *SessionStore) IsAuthenticated() bool {
	_, ok := s.Session()
	return ok
}

func (s *SessionStore) Role() models.Role {
	sess, _ := s.Session()
	return sess.Identity.Role
}

// ExpiresAt reads the exp claim of the session token without verifying the
// signature. It is for display only.
func (s *SessionStore) ExpiresAt() (time.Time, bool) {
	sess, ok := s.Session()
	if !ok || sess.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *SessionStore) persist(ctx context.Context, sess models.Session) error {
	user, err := json.Marshal(sess.Identity)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyUser, user); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyToken, []byte(sess.Token)); err != nil {
			return err
		}
		if sess.OrgID == "" {
			return repo.Delete(ctx, KeyOrgID)
		}
		return repo.Set(ctx, KeyOrgID, []byte(sess.OrgID))
	})
}
