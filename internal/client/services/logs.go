package services

import (
	"context"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

type logsEnvelope struct {
	Logs []models.LogEntry `json:"logs"`
}

// Logs caches the organization's audit log. It is read-only.
type Logs struct {
	Collection[models.LogEntry]

	api client.Client
	log logging.Logger
}

func NewLogs(api client.Client, log logging.Logger) *Logs {
	return &Logs{api: api, log: sliceLogger(log, "logs")}
}

func (l *Logs) FetchAll(ctx context.Context) error {
	return l.fetchAll(ctx, l.log, "Failed to fetch logs", func(ctx context.Context) ([]models.LogEntry, error) {
		var resp logsEnvelope
		if err := l.api.Get(ctx, "/", nil, &resp); err != nil {
			return nil, err
		}
		return resp.Logs, nil
	})
}

// Clear drops the cached entries when the log view goes away.
func (l *Logs) Clear() {
	l.Reset()
}
