package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/apiconsole/internal/client/archive"
	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/client/services"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
	"github.com/stretchr/testify/require"
)

type obj = map[string]any

// backend is a fake admin API built on a pattern mux; it records every
// request as "METHOD /path".
type backend struct {
	mux *http.ServeMux
	srv *httptest.Server

	mu     sync.Mutex
	calls  []string
	bodies map[string]json.RawMessage
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{mux: http.NewServeMux(), bodies: map[string]json.RawMessage{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.calls = append(b.calls, key)
		b.bodies[key] = body
		b.mu.Unlock()

		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) reply(pattern string, status int, v any) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	})
}

func (b *backend) called(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.calls {
		if c == key {
			return true
		}
	}
	return false
}

func (b *backend) body(t *testing.T, key string) obj {
	t.Helper()
	b.mu.Lock()
	raw := b.bodies[key]
	b.mu.Unlock()
	var out obj
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// newTestApp wires an App against the backend with an in-memory database.
// Prompts read from input; output is captured.
func newTestApp(t *testing.T, b *backend, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	out := &bytes.Buffer{}
	log := logging.Nop()
	return &App{
		db: db,
		state: services.NewState(services.StateConfig{
			BaseURL:    b.srv.URL + "/api",
			DB:         db,
			HTTPClient: b.srv.Client(),
			Logger:     log,
		}),
		archiver: archive.New(archive.Config{}, log),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func identity(role models.Role, orgID string) obj {
	u := obj{"_id": "u0", "name": "Owner", "email": "a@b.com", "role": string(role)}
	if orgID != "" {
		u["orgId"] = orgID
	}
	return u
}

// loginAs logs the app in through the fake backend.
func loginAs(t *testing.T, a *App, b *backend, role models.Role, orgID string) {
	t.Helper()
	b.reply("POST /api/auth/login", http.StatusOK, obj{"user": identity(role, orgID), "token": "t1"})
	require.NoError(t, a.state.Session.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"}))
}
