package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/client/services"
	"github.com/dmitrijs2005/apiconsole/internal/shared"
)

var errNotListed = services.ErrNotCached

func (a *App) listUsers(ctx context.Context, _ []string) error {
	u := a.state.Users
	u.ClearMessages()

	err := u.FetchAll(ctx)
	a.report(u.Status(), err)
	a.printUsers(u.Items())
	return err
}

func (a *App) ensureUsers(ctx context.Context) {
	if a.state.Users.Len() == 0 {
		_ = a.state.Users.FetchAll(ctx)
	}
}

func (a *App) addUser(ctx context.Context, _ []string) error {
	var in models.SubUserInput
	var err error
	if in.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = string(pw)
	shared.WipeByteArray(pw)

	u := a.state.Users
	u.ClearMessages()
	err = u.AddSubUser(ctx, in)
	a.report(u.Status(), err)
	return err
}

func (a *App) editUser(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "User id")
	if err != nil {
		return err
	}

	u := a.state.Users
	u.ClearMessages()
	a.ensureUsers(ctx)
	current, ok := u.Find(id)
	if !ok {
		a.report(u.Status(), errNotListed)
		return errNotListed
	}
	if current.Role == models.RoleMain {
		a.report(u.Status(), services.ErrMainUserProtected)
		return services.ErrMainUserProtected
	}

	patch := models.SubUserPatch{}
	if patch.Name, err = GetWithDefault(a.reader, "Name", current.Name, a.out); err != nil {
		return err
	}
	if patch.Email, err = GetWithDefault(a.reader, "Email", current.Email, a.out); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "New password (empty keeps the current one)")
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	patch.Password = string(pw)
	shared.WipeByteArray(pw)

	err = u.UpdateSubUser(ctx, id, patch)
	a.report(u.Status(), err)
	return err
}

// userStatus sets the status given as second argument, or flips the
// current one.
func (a *App) userStatus(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "User id")
	if err != nil {
		return err
	}

	u := a.state.Users
	u.ClearMessages()
	a.ensureUsers(ctx)

	var status models.Status
	if len(args) > 1 {
		if status, err = models.ParseStatus(args[1]); err != nil {
			a.report(u.Status(), models.ValidationErrors{"status": "must be one of: active, inactive"})
			return err
		}
	} else {
		current, ok := u.Find(id)
		if !ok {
			a.report(u.Status(), errNotListed)
			return errNotListed
		}
		status = current.Status.Toggle()
	}

	err = u.UpdateStatus(ctx, id, status)
	a.report(u.Status(), err)
	return err
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "User id")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete user %s?", id), a.out)
	if err != nil || !ok {
		return err
	}

	u := a.state.Users
	u.ClearMessages()
	err = u.DeleteSubUser(ctx, id)
	a.report(u.Status(), err)
	return err
}
