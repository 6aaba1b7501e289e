package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) ([]byte, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false
	}
	require.NoError(t, err)
	return v, true
}

func insertMeta(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

// ---- fake backend ----

type call struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   json.RawMessage
}

// fakeAPI is an httptest backend routing on exact "METHOD /path".
type fakeAPI struct {
	t      *testing.T
	srv    *httptest.Server
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []call
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{t: t, routes: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls = append(f.calls, call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	h := f.routes[key]
	f.mu.Unlock()

	if h == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no route " + key})
		return
	}
	h(w, r)
}

// reply registers a fixed JSON response.
func (f *fakeAPI) reply(method, path string, status int, body any) {
	f.handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	})
}

func (f *fakeAPI) handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) LastCall() call {
	f.t.Helper()
	calls := f.Calls()
	require.NotEmpty(f.t, calls, "expected at least one request")
	return calls[len(calls)-1]
}

// scoped returns a gateway for scope with an optional fixed token.
func (f *fakeAPI) scoped(scope, token string) *client.HTTPClient {
	return client.NewScoped(client.Config{
		BaseAddress: f.srv.URL + "/api",
		Credentials: func(context.Context) (string, error) { return token, nil },
		Logger:      logging.Nop(),
	}, scope)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type obj = map[string]any

const (
	testTimeout = 2 * time.Second
	testTick    = 5 * time.Millisecond
)
