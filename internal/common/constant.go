// Package common contains header names and sentinel errors shared by the
// console's transport and service layers.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the credential in AuthorizationHeaderName.
	BearerScheme = "Bearer"

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"
)
