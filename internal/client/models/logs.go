package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Actor is the user a log entry is attributed to. The backend sends either
// the populated user document or only its id.
type Actor struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (a *Actor) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = Actor{}
		return nil
	case len(b) > 0 && b[0] == '"':
		*a = Actor{}
		return json.Unmarshal(b, &a.ID)
	}
	type plain Actor
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Actor(p)
	return nil
}

type LogEntry struct {
	ID        string          `json:"_id"`
	Actor     Actor           `json:"userId"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	Status    LogStatus       `json:"status"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
	Details   json.RawMessage `json:"details,omitempty"`
}

func (l LogEntry) RecordID() string { return l.ID }

// Paths inside Details tried in order after the embedded actor.
var (
	actorNamePaths = [][]string{
		{"userName"},
		{"request", "body", "name"},
		{"request", "body", "email"},
		{"response", "user", "name"},
		{"response", "user", "email"},
	}
	actorEmailPaths = [][]string{
		{"response", "user", "email"},
		{"request", "body", "email"},
	}
)

// NoActor is shown when no source names the actor.
const NoActor = "—"

// ActorName returns the first non-empty of: the embedded user's name, then
// each of actorNamePaths in Details. NoActor when all are empty.
func (l LogEntry) ActorName() string {
	if l.Actor.Name != "" {
		return l.Actor.Name
	}
	if v := firstPath(l.Details, actorNamePaths); v != "" {
		return v
	}
	return NoActor
}

// ActorEmail is ActorName's counterpart for the email column; it falls back
// to "".
func (l LogEntry) ActorEmail() string {
	if l.Actor.Email != "" {
		return l.Actor.Email
	}
	return firstPath(l.Details, actorEmailPaths)
}

func firstPath(raw json.RawMessage, paths [][]string) string {
	if len(raw) == 0 {
		return ""
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	for _, p := range paths {
		if v := lookupString(doc, p); v != "" {
			return v
		}
	}
	return ""
}

func lookupString(doc map[string]any, path []string) string {
	var cur any = doc
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	s, _ := cur.(string)
	return s
}
