package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/apiconsole/internal/client/archive"
	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/client/services"
)

const timeLayout = "2006-01-02 15:04:05"

// report prints the outcome of an operation: field errors for a rejected
// form, then the slice's error or success message.
func (a *App) report(st services.Status, err error) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fmt.Fprintln(a.out, "Please fix the following:")
		for _, field := range slices.Sorted(maps.Keys(verrs)) {
			fmt.Fprintf(a.out, "  %s: %s\n", field, verrs[field])
		}
		return
	case errors.Is(err, services.ErrMainUserProtected):
		fmt.Fprintln(a.out, "The main user cannot be changed.")
		return
	case errors.Is(err, services.ErrNotCached):
		fmt.Fprintln(a.out, "No such record in the current list; list it first.")
		return
	case errors.Is(err, archive.ErrArchiveDisabled):
		fmt.Fprintln(a.out, "Log archive is not configured.")
		return
	}

	if st.Error != "" {
		fmt.Fprintf(a.out, "Error: %s\n", st.Error)
	}
	if errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn() {
		fmt.Fprintln(a.out, "Session expired or not permitted; log out and log in again.")
	}
	if st.SuccessMessage != "" {
		fmt.Fprintln(a.out, st.SuccessMessage)
	}
}

func (a *App) table(header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func (a *App) printSuppliers(items []models.Supplier) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No suppliers.")
		return
	}
	tw := a.table("ID", "NAME", "ENDPOINT", "USERNAME", "BRANCH", "PCC", "TYPE", "STATUS", "PRIORITY")
	for _, s := range items {
		row(tw, s.ID, s.Name, s.Endpoint, s.Username, s.TargetBranch, s.PCC, s.APIType, s.Status, s.Priority)
	}
	_ = tw.Flush()
}

func (a *App) printConfigs(items []models.APIConfig) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No configs.")
		return
	}
	tw := a.table("ID", "NAME", "ENDPOINT", "USERNAME", "BRANCH", "PCC", "TYPE", "STATUS", "PRIORITY")
	for _, c := range items {
		row(tw, c.ID, c.Name, c.Endpoint, c.Username, c.TargetBranch, c.PCC, c.APIType, c.Status, c.Priority)
	}
	_ = tw.Flush()
}

func (a *App) printUsers(items []models.User) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No users.")
		return
	}
	tw := a.table("ID", "NAME", "EMAIL", "ROLE", "STATUS")
	for _, u := range items {
		row(tw, u.ID, u.Name, u.Email, u.Role, u.Status)
	}
	_ = tw.Flush()
}

func (a *App) printLogs(items []models.LogEntry) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No log entries.")
		return
	}
	tw := a.table("TIME", "USER", "EMAIL", "ACTION", "ENTITY", "STATUS", "MESSAGE")
	for _, l := range items {
		row(tw, l.CreatedAt.Local().Format(timeLayout), l.ActorName(), l.ActorEmail(), l.Action, l.Entity, l.Status, l.Message)
	}
	_ = tw.Flush()
}

func (a *App) printOrg(o models.Organization) {
	tw := a.table("FIELD", "VALUE")
	row(tw, "ID", o.ID)
	row(tw, "Name", o.Name)
	row(tw, "Address", o.Address)
	row(tw, "Active", o.Active)
	row(tw, "Maintenance", o.MaintenanceMode)
	_ = tw.Flush()
}

func (a *App) printSearch(snap services.SearchSnapshot) {
	fmt.Fprintf(a.out, "Results for %q\n", snap.Query)
	for _, category := range slices.Sorted(maps.Keys(snap.Counts)) {
		fmt.Fprintf(a.out, "  %s: %d\n", category, snap.Counts[category])
	}
	if len(snap.Results.Users) > 0 {
		fmt.Fprintln(a.out, "Users:")
		a.printUsers(snap.Results.Users)
	}
	if len(snap.Results.Suppliers) > 0 {
		fmt.Fprintln(a.out, "Suppliers:")
		a.printSuppliers(snap.Results.Suppliers)
	}
	if len(snap.Results.APIConfigs) > 0 {
		fmt.Fprintln(a.out, "API configs:")
		a.printConfigs(snap.Results.APIConfigs)
	}
}
