package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = getSimpleText(a.reader, "Search users, suppliers and configs", a.out); err != nil {
			return err
		}
	}

	s := a.state.Search
	s.ClearMessages()
	err := s.Search(ctx, query)
	a.report(s.Status(), err)
	if err != nil {
		return err
	}

	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(a.out, "Search cleared.")
		return nil
	}
	a.printSearch(s.Snapshot())
	return nil
}
