package client

import (
	"context"
	"net/url"
)

// Client is the request surface the services depend on. HTTPClient is the
// production implementation.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// CredentialSupplier returns the bearer credential to attach, or "" for
// none. It is called once per request.
type CredentialSupplier func(ctx context.Context) (string, error)
