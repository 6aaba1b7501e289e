package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
)

var errNoOrganization = errors.New("session has no organization")

func (a *App) requireOrg() (string, error) {
	id := a.orgID()
	if id == "" {
		fmt.Fprintln(a.out, "No organization is linked to this account.")
		return "", errNoOrganization
	}
	return id, nil
}

func (a *App) showOrg(ctx context.Context, _ []string) error {
	id, err := a.requireOrg()
	if err != nil {
		return err
	}
	org := a.state.Org
	org.ClearMessages()

	err = org.Fetch(ctx, id)
	a.report(org.Status(), err)
	if o, ok := org.Organization(); ok {
		a.printOrg(o)
	}
	return err
}

// cachedOrg returns the cached organization, fetching it first if needed.
func (a *App) cachedOrg(ctx context.Context, id string) (models.Organization, error) {
	if o, ok := a.state.Org.Organization(); ok {
		return o, nil
	}
	if err := a.state.Org.Fetch(ctx, id); err != nil {
		a.report(a.state.Org.Status(), err)
		return models.Organization{}, err
	}
	o, _ := a.state.Org.Organization()
	return o, nil
}

func (a *App) editOrg(ctx context.Context, _ []string) error {
	id, err := a.requireOrg()
	if err != nil {
		return err
	}
	current, err := a.cachedOrg(ctx, id)
	if err != nil {
		return err
	}

	var details models.OrgDetails
	if details.Name, err = GetWithDefault(a.reader, "Organization name", current.Name, a.out); err != nil {
		return err
	}
	if details.Address, err = GetWithDefault(a.reader, "Address", current.Address, a.out); err != nil {
		return err
	}

	org := a.state.Org
	org.ClearMessages()
	err = org.Update(ctx, id, details)
	a.report(org.Status(), err)
	return err
}

func (a *App) orgStatus(ctx context.Context, _ []string) error {
	id, err := a.requireOrg()
	if err != nil {
		return err
	}
	current, err := a.cachedOrg(ctx, id)
	if err != nil {
		return err
	}

	var status models.OrgStatus
	if status.Active, err = a.askBool("Active", current.Active); err != nil {
		return err
	}
	if status.MaintenanceMode, err = a.askBool("Maintenance mode", current.MaintenanceMode); err != nil {
		return err
	}

	org := a.state.Org
	org.ClearMessages()
	err = org.UpdateStatus(ctx, id, status)
	a.report(org.Status(), err)
	return err
}

func (a *App) deleteOrg(ctx context.Context, _ []string) error {
	id, err := a.requireOrg()
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, "Delete the organization and all its data?", a.out)
	if err != nil || !ok {
		return err
	}

	org := a.state.Org
	org.ClearMessages()
	err = org.Delete(ctx, id)
	a.report(org.Status(), err)
	return err
}

func (a *App) askBool(prompt string, current bool) (bool, error) {
	def := "no"
	if current {
		def = "yes"
	}
	v, err := GetWithDefault(a.reader, prompt+" (yes/no)", def, a.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes", "true":
		return true, nil
	default:
		return false, nil
	}
}
