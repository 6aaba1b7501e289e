package cli

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/apiconsole/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	dispatch(ctx context.Context, cmd string, args []string) error
}

var (
	guestCommands = []string{"register", "login"}

	subCommands = []string{
		"suppliers", "addsupplier", "editsupplier", "delsupplier",
		"search", "logout",
	}

	mainCommands = []string{
		"org", "orgedit", "orgstatus", "orgdelete",
		"suppliers", "addsupplier", "editsupplier", "delsupplier",
		"configs", "addconfig", "editconfig", "toggleconfig", "findconfig",
		"users", "adduser", "edituser", "userstatus", "deluser",
		"logs", "archivelogs",
		"search", "logout",
	}
)

// commandsFor lists the commands available besides help and exit.
func commandsFor(loggedIn bool, role models.Role) []string {
	switch {
	case !loggedIn:
		return guestCommands
	case role == models.RoleMain:
		return mainCommands
	default:
		return subCommands
	}
}

// runREPL reads one command per line from reader and dispatches it to a.
//
// help lists the commands available to the current session; exit or quit
// leave. A command the session may not run is reported as unknown. The loop
// also ends when input is exhausted. Handler errors are ignored here:
// handlers print their own outcome.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("console %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) > 0 {
			cmd, args := parts[0], parts[1:]
			available := commandsFor(a.isLoggedIn(), a.role())

			switch {
			case cmd == "help":
				printlnFn("Available commands: " + strings.Join(append(slices.Clone(available), "exit"), ", "))
			case cmd == "exit" || cmd == "quit":
				printlnFn("Bye!")
				return
			case slices.Contains(available, cmd):
				_ = a.dispatch(ctx, cmd, args)
			default:
				printlnFn("Unknown command:", cmd)
			}
		}

		if err != nil {
			return
		}
	}
}
