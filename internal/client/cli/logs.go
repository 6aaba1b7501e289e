package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/apiconsole/internal/client/archive"
)

var errArchiveDisabled = archive.ErrArchiveDisabled

func (a *App) showLogs(ctx context.Context, _ []string) error {
	l := a.state.Logs
	l.ClearMessages()

	err := l.FetchAll(ctx)
	a.report(l.Status(), err)
	a.printLogs(l.Items())
	return err
}

// archiveLogs uploads the cached log entries, fetching them first when
// nothing is cached.
func (a *App) archiveLogs(ctx context.Context, _ []string) error {
	if !a.archiver.Enabled() {
		a.report(a.state.Logs.Status(), errArchiveDisabled)
		return errArchiveDisabled
	}
	id, err := a.requireOrg()
	if err != nil {
		return err
	}

	l := a.state.Logs
	l.ClearMessages()
	if l.Len() == 0 {
		if err := l.FetchAll(ctx); err != nil {
			a.report(l.Status(), err)
			return err
		}
	}

	entries := l.Items()
	key, err := a.archiver.Upload(ctx, id, entries)
	if err != nil {
		a.log.Error(ctx, "archiving logs failed", "error", err)
		fmt.Fprintf(a.out, "Error: archiving logs failed: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Archived %d entries to %s\n", len(entries), key)
	return nil
}
