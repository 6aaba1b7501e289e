package services

import (
	"context"
	"maps"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

// SearchSnapshot is the last accepted search.
type SearchSnapshot struct {
	Query   string
	Results models.SearchResults
	Counts  models.SearchCounts
}

// Search holds the transient result set of the cross-entity search.
type Search struct {
	tracker

	api     client.Client
	log     logging.Logger
	current SearchSnapshot
}

func NewSearch(api client.Client, log logging.Logger) *Search {
	return &Search{
		api:     api,
		log:     sliceLogger(log, "search"),
		current: emptySnapshot(),
	}
}

func emptySnapshot() SearchSnapshot {
	return SearchSnapshot{Results: models.EmptySearchResults(), Counts: models.SearchCounts{}}
}

func (s *Search) Snapshot() SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.current
	snap.Counts = maps.Clone(snap.Counts)
	return snap
}

// Search runs query. A blank query clears the results without calling the
// server. Query, results and counts are replaced together.
func (s *Search) Search(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		s.Clear()
		return nil
	}

	return s.run(ctx, s.log, "search", "Search failed", func(ctx context.Context) (outcome, error) {
		var resp models.SearchResponse
		if err := s.api.Get(ctx, "/", url.Values{"q": {query}}, &resp); err != nil {
			return outcome{}, err
		}
		if !resp.Success {
			return outcome{}, &RejectedError{Message: resp.Message}
		}

		snap := SearchSnapshot{Query: resp.Query, Results: resp.Results.Normalize(), Counts: resp.Counts}
		if snap.Query == "" {
			snap.Query = query
		}
		if snap.Counts == nil {
			snap.Counts = models.SearchCounts{}
		}
		return outcome{apply: func(uint64) error {
			s.current = snap
			return nil
		}}, nil
	})
}

// Clear empties the results and the status surface. Searches still in
// flight settle without effect.
func (s *Search) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.current = emptySnapshot()
}

func (s *Search) Reset() {
	s.Clear()
}
