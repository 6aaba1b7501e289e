package services

import "net/url"

// dataEnvelope is the {"data": ...} wrapper used by the suppliers and
// config resources.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func idPath(prefix, id, suffix string) string {
	return prefix + url.PathEscape(id) + suffix
}
