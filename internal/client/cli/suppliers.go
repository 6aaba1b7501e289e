package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/shared"
)

// integrationForm points at the fields suppliers and API configs share.
type integrationForm struct {
	Name, Endpoint, Username, Password, TargetBranch, PCC *string

	APIType  *models.APIType
	Status   *models.Status
	Priority *int
}

// fill prompts for every field, offering the current values. An empty
// password answer keeps the current password.
func (a *App) fill(f integrationForm) error {
	var err error
	text := func(dst *string, prompt string) {
		if err == nil {
			*dst, err = GetWithDefault(a.reader, prompt, *dst, a.out)
		}
	}

	text(f.Name, "Name")
	text(f.Endpoint, "Endpoint URL")
	text(f.Username, "Username")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Integration password (empty keeps the current one)")
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if len(pw) > 0 {
		*f.Password = string(pw)
	}
	shared.WipeByteArray(pw)

	text(f.TargetBranch, "Target branch")
	text(f.PCC, "PCC")

	apiType, status := string(*f.APIType), string(*f.Status)
	text(&apiType, "API type (sandbox/production)")
	text(&status, "Status (active/inactive)")

	priority := ""
	if *f.Priority > 0 {
		priority = strconv.Itoa(*f.Priority)
	}
	text(&priority, "Priority")
	if err != nil {
		return err
	}

	*f.APIType = models.APIType(apiType)
	*f.Status = models.Status(status)
	if priority == "" {
		*f.Priority = 0
		return nil
	}
	p, err := strconv.Atoi(priority)
	if err != nil {
		return models.ValidationErrors{"priority": "must be a number"}
	}
	*f.Priority = p
	return nil
}

func supplierForm(s *models.Supplier) integrationForm {
	return integrationForm{
		Name: &s.Name, Endpoint: &s.Endpoint, Username: &s.Username, Password: &s.Password,
		TargetBranch: &s.TargetBranch, PCC: &s.PCC,
		APIType: &s.APIType, Status: &s.Status, Priority: &s.Priority,
	}
}

// listSuppliers shows all suppliers, or one when an id is given.
func (a *App) listSuppliers(ctx context.Context, args []string) error {
	s := a.state.Suppliers
	s.ClearMessages()

	if len(args) > 0 {
		err := s.FetchOne(ctx, args[0])
		a.report(s.Status(), err)
		if cur, ok := s.Current(); ok && err == nil {
			a.printSuppliers([]models.Supplier{cur})
		}
		return err
	}

	err := s.FetchAll(ctx)
	a.report(s.Status(), err)
	a.printSuppliers(s.Items())
	return err
}

func (a *App) addSupplier(ctx context.Context, _ []string) error {
	rec := models.Supplier{APIType: models.APITypeSandbox, Status: models.StatusActive, Priority: 1}
	if err := a.fill(supplierForm(&rec)); err != nil {
		a.report(a.state.Suppliers.Status(), err)
		return err
	}

	s := a.state.Suppliers
	s.ClearMessages()
	err := s.Create(ctx, rec)
	a.report(s.Status(), err)
	return err
}

func (a *App) editSupplier(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Supplier id")
	if err != nil {
		return err
	}

	s := a.state.Suppliers
	s.ClearMessages()
	rec, ok := s.Find(id)
	if !ok {
		if err := s.FetchOne(ctx, id); err != nil {
			a.report(s.Status(), err)
			return err
		}
		rec, _ = s.Current()
	}

	if err := a.fill(supplierForm(&rec)); err != nil {
		a.report(s.Status(), err)
		return err
	}

	err = s.Update(ctx, id, rec)
	a.report(s.Status(), err)
	return err
}

func (a *App) deleteSupplier(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Supplier id")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete supplier %s?", id), a.out)
	if err != nil || !ok {
		return err
	}

	s := a.state.Suppliers
	s.ClearMessages()
	err = s.Delete(ctx, id)
	a.report(s.Status(), err)
	return err
}
