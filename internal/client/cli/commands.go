package cli

import (
	"context"
	"fmt"
)

type handler func(ctx context.Context, args []string) error

func (a *App) handlers() map[string]handler {
	return map[string]handler{
		"register": a.Register,
		"login":    a.Login,
		"logout":   a.Logout,

		"org":       a.showOrg,
		"orgedit":   a.editOrg,
		"orgstatus": a.orgStatus,
		"orgdelete": a.deleteOrg,

		"suppliers":    a.listSuppliers,
		"addsupplier":  a.addSupplier,
		"editsupplier": a.editSupplier,
		"delsupplier":  a.deleteSupplier,

		"configs":      a.listConfigs,
		"addconfig":    a.addConfig,
		"editconfig":   a.editConfig,
		"toggleconfig": a.toggleConfig,
		"findconfig":   a.findConfig,

		"users":      a.listUsers,
		"adduser":    a.addUser,
		"edituser":   a.editUser,
		"userstatus": a.userStatus,
		"deluser":    a.deleteUser,

		"logs":        a.showLogs,
		"archivelogs": a.archiveLogs,

		"search": a.search,
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	h, ok := a.handlers()[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd)
	}
	return h(ctx, args)
}

// idArg returns the first argument or asks for it.
func (a *App) idArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
