package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("t1")))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("t1"), v)
}

func TestGet_MissingKeyReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "user")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "orgId", []byte("o1")))
	require.NoError(t, r.Set(ctx, "orgId", []byte("o2")))

	v, err := r.Get(ctx, "orgId")
	require.NoError(t, err)
	assert.Equal(t, []byte("o2"), v)
}

func TestSet_NilValueStoredAsEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata WHERE key = 'k'`).Scan(&n))
	assert.Equal(t, 1, n)

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDelete_SeveralKeysAtOnce(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "user", []byte(`{}`)))
	require.NoError(t, r.Set(ctx, "token", []byte("t")))
	require.NoError(t, r.Set(ctx, "orgId", []byte("o")))
	require.NoError(t, r.Set(ctx, "other", []byte("keep")))

	require.NoError(t, r.Delete(ctx, "user", "token", "orgId"))

	for _, k := range []string{"user", "token", "orgId"} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, v, "key %s", k)
	}
	v, err := r.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), v)

	// missing keys and an empty key list are fine
	require.NoError(t, r.Delete(ctx, "user"))
	require.NoError(t, r.Delete(ctx))
}

func TestErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewSQLiteRepository(db)
	ctx := context.Background()
	driverErr := errors.New("database is locked")

	mock.ExpectQuery(`SELECT value FROM metadata`).WithArgs("k").WillReturnError(driverErr)
	_, err = r.Get(ctx, "k")
	require.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), "failed to get metadata[k]")

	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(driverErr)
	err = r.Set(ctx, "k", []byte("v"))
	assert.Contains(t, err.Error(), "failed to set metadata[k]")

	mock.ExpectExec(`DELETE FROM metadata WHERE key IN`).WithArgs("a", "b").WillReturnError(driverErr)
	err = r.Delete(ctx, "a", "b")
	assert.Contains(t, err.Error(), "failed to delete metadata[a b]")

	require.NoError(t, mock.ExpectationsWereMet())
}
