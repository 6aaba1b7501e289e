// Package services holds the console's client state: the session store and
// one slice per backend resource (organization, suppliers, configs, users,
// logs, search), all built on the same request/state machinery.
//
// Every slice exposes a Status surface (Loading, Error, SuccessMessage) and
// one blocking method per remote interaction. Methods are safe to call from
// several goroutines at once; the view runs them in the background when it
// wants to keep rendering while a request is in flight.
//
// A failed operation never changes a slice's collection. Its Error is the
// server's message when the response carried one and a fixed fallback
// otherwise. Payloads are validated before anything is sent, and a
// validation failure leaves the status surface alone.
//
// State wires the session store and the six slices together over one local
// database and one API base address.
package services
