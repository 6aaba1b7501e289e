// Package client is the console's request gateway to the admin REST API.
//
// # Overview
//
// An HTTPClient is built from an explicit Config: the base address of one
// resource scope (e.g. https://api.example.com/api/suppliers) and a
// CredentialSupplier. The supplier is consulted on every request, so a
// login or logout takes effect on the very next call without rebuilding
// the client. When it yields no credential the request goes out without an
// Authorization header and the server decides.
//
// Derive per-resource clients from one base with Scoped:
//
//	base := client.NewHTTPClient(client.Config{BaseAddress: "http://localhost:5000/api", Credentials: store.Token})
//	suppliers := base.Scoped("suppliers")
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the body's "message" field.
// Transport failures wrap ErrUnavailable. Use MessageOr to turn either into
// the text shown to the user. 401 and 403 responses match ErrUnauthorized
// through errors.Is.
//
// The package also bootstraps the local SQLite database (InitDatabase,
// RunMigrations) that backs durable session storage.
package client
