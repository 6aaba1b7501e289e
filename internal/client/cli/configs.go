package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
)

func configForm(c *models.APIConfig) integrationForm {
	return integrationForm{
		Name: &c.Name, Endpoint: &c.Endpoint, Username: &c.Username, Password: &c.Password,
		TargetBranch: &c.TargetBranch, PCC: &c.PCC,
		APIType: &c.APIType, Status: &c.Status, Priority: &c.Priority,
	}
}

func (a *App) listConfigs(ctx context.Context, _ []string) error {
	c := a.state.Configs
	c.ClearMessages()

	err := c.FetchAll(ctx)
	a.report(c.Status(), err)
	a.printConfigs(c.Items())
	return err
}

// ensureConfigs loads the list once so edit and toggle can find records.
func (a *App) ensureConfigs(ctx context.Context) {
	if a.state.Configs.Len() == 0 {
		_ = a.state.Configs.FetchAll(ctx)
	}
}

func (a *App) addConfig(ctx context.Context, _ []string) error {
	rec := models.NewAPIConfig()
	if err := a.fill(configForm(&rec)); err != nil {
		a.report(a.state.Configs.Status(), err)
		return err
	}

	c := a.state.Configs
	c.ClearMessages()
	err := c.Create(ctx, rec)
	a.report(c.Status(), err)
	return err
}

func (a *App) editConfig(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Config id")
	if err != nil {
		return err
	}

	c := a.state.Configs
	c.ClearMessages()
	a.ensureConfigs(ctx)
	rec, ok := c.Find(id)
	if !ok {
		a.report(c.Status(), errNotListed)
		return errNotListed
	}

	if err := a.fill(configForm(&rec)); err != nil {
		a.report(c.Status(), err)
		return err
	}

	err = c.Update(ctx, id, rec)
	a.report(c.Status(), err)
	return err
}

func (a *App) toggleConfig(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Config id")
	if err != nil {
		return err
	}

	c := a.state.Configs
	c.ClearMessages()
	a.ensureConfigs(ctx)

	err = c.ToggleStatus(ctx, id)
	a.report(c.Status(), err)
	return err
}

// findConfig narrows the config list to a query; an empty query shows all.
func (a *App) findConfig(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = getSimpleText(a.reader, "Search configs (empty shows all)", a.out); err != nil {
			return err
		}
	}

	c := a.state.Configs
	c.ClearMessages()
	err := c.Search(ctx, query)
	a.report(c.Status(), err)
	a.printConfigs(c.Items())
	return err
}
