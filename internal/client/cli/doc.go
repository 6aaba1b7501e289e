// Package cli is the console's interactive view layer.
//
// It wires configuration, the local database and the client state, then
// runs a REPL whose commands depend on who is logged in:
//
//   - nobody: register, login
//   - main users: the organization, suppliers, configs, users, logs and
//     search commands
//   - sub users: the supplier commands and search
//
// Every command clears the messages of the slice it shows, runs the
// operation, then prints the slice's error or success message followed by
// its data. App.Run blocks until the user exits.
package cli
