package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register asks for the owner's details and the new organization, then
// creates both. It does not log in.
func (a *App) Register(ctx context.Context, _ []string) error {
	sess := a.state.Session
	sess.ClearMessages()

	var reg models.Registration
	var err error
	if reg.Name, err = getSimpleText(a.reader, "Enter your name", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	reg.Password = string(password)
	shared.WipeByteArray(password)
	if reg.OrgName, err = getSimpleText(a.reader, "Enter organization name", a.out); err != nil {
		return err
	}
	if reg.Address, err = getSimpleText(a.reader, "Enter organization address", a.out); err != nil {
		return err
	}

	err = sess.Register(ctx, reg)
	a.report(sess.Status(), err)
	return err
}

// Login asks for credentials and starts a session. A failed login keeps
// the current session, if any.
func (a *App) Login(ctx context.Context, _ []string) error {
	sess := a.state.Session
	sess.ClearMessages()

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	creds := models.Credentials{Email: email, Password: string(password)}
	shared.WipeByteArray(password)

	err = sess.Login(ctx, creds)
	a.report(sess.Status(), err)
	if err != nil {
		return err
	}

	s, _ := sess.Session()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", s.Identity.Email, s.Identity.Role)
	if exp, ok := sess.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "Session expires at %s\n", exp.Local().Format(timeLayout))
	}
	return nil
}

// Logout ends the session and forgets every cached list.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.state.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Error: could not clear the stored session")
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
