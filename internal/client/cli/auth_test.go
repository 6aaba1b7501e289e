package cli

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	b := newBackend(t)
	b.reply("POST /api/auth/login", http.StatusOK, obj{"user": identity(models.RoleMain, "o1"), "token": "t1"})
	a, out := newTestApp(t, b, "a@b.com\n")
	stubPassword(t, "x")

	require.NoError(t, a.Login(context.Background(), nil))

	assert.Contains(t, out.String(), "Logged in as a@b.com (main)")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, models.RoleMain, a.role())
	assert.Equal(t, "o1", a.orgID())
	assert.Equal(t, "(a@b.com main)", a.getStatus())
	assert.Equal(t, obj{"email": "a@b.com", "password": "x"}, b.body(t, "POST /api/auth/login"))
}

func TestLogin_ServerRejects(t *testing.T) {
	b := newBackend(t)
	b.reply("POST /api/auth/login", http.StatusUnauthorized, obj{"message": "Invalid credentials"})
	a, out := newTestApp(t, b, "a@b.com\n")
	stubPassword(t, "wrong")

	require.Error(t, a.Login(context.Background(), nil))

	assert.Contains(t, out.String(), "Error: Invalid credentials")
	assert.NotContains(t, out.String(), "log in again")
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.getStatus())
}

func TestLogin_EmptyFieldsNeverReachServer(t *testing.T) {
	b := newBackend(t)
	a, out := newTestApp(t, b, "\n")
	stubPassword(t, "")

	require.Error(t, a.Login(context.Background(), nil))

	assert.Contains(t, out.String(), "Please fix the following:")
	assert.Contains(t, out.String(), "email:")
	assert.Contains(t, out.String(), "password:")
	assert.False(t, b.called("POST /api/auth/login"))
}

func TestRegister_Success(t *testing.T) {
	b := newBackend(t)
	b.reply("POST /api/auth/register", http.StatusCreated, obj{"message": "ok"})
	a, out := newTestApp(t, b, "Owner\na@b.com\nAcme\nMain st 1\n")
	stubPassword(t, "secret1")

	require.NoError(t, a.Register(context.Background(), nil))

	assert.Contains(t, out.String(), "Registration successful")
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "Acme", b.body(t, "POST /api/auth/register")["orgName"])
}

func TestLogout_ClearsSession(t *testing.T) {
	b := newBackend(t)
	a, out := newTestApp(t, b, "")
	loginAs(t, a, b, models.RoleMain, "o1")

	require.NoError(t, a.Logout(context.Background(), nil))

	assert.Contains(t, out.String(), "Logged out.")
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.orgID())
}
