package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogs_FetchAndClear(t *testing.T) {
	api := newFakeAPI(t)
	l := NewLogs(api.scoped("logs", "t1"), logging.Nop())

	api.reply(http.MethodGet, "/api/logs/", http.StatusOK, obj{"logs": []obj{
		{"_id": "l1", "userId": obj{"_id": "u1", "name": "Ann", "email": "a@x.com"}, "action": "create", "entity": "supplier", "status": "success", "createdAt": "2024-05-01T10:00:00Z"},
		{"_id": "l2", "userId": "u2", "action": "login", "entity": "auth", "status": "failure", "createdAt": "2024-05-01T11:00:00Z",
			"details": obj{"request": obj{"body": obj{"email": "b@x.com"}}}},
	}})

	require.NoError(t, l.FetchAll(context.Background()))
	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Ann", items[0].ActorName())
	assert.Equal(t, "b@x.com", items[1].ActorName())
	assert.Equal(t, models.LogStatusFailure, items[1].Status)

	l.Clear()
	assert.Empty(t, l.Items())
	assert.Equal(t, Status{}, l.Status())
}

func TestLogs_FetchFailureFallback(t *testing.T) {
	api := newFakeAPI(t)
	l := NewLogs(api.scoped("logs", "t1"), logging.Nop())
	api.reply(http.MethodGet, "/api/logs/", http.StatusInternalServerError, nil)

	require.Error(t, l.FetchAll(context.Background()))
	assert.Equal(t, "Failed to fetch logs", l.Status().Error)
}
