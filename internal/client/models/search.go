package models

// SearchResults groups matches by category. Empty categories are empty
// slices, never nil.
type SearchResults struct {
	Users      []User      `json:"users"`
	Suppliers  []Supplier  `json:"suppliers"`
	APIConfigs []APIConfig `json:"apiConfigs"`
}

func EmptySearchResults() SearchResults {
	return SearchResults{Users: []User{}, Suppliers: []Supplier{}, APIConfigs: []APIConfig{}}
}

// Normalize replaces nil categories with empty slices.
func (r SearchResults) Normalize() SearchResults {
	if r.Users == nil {
		r.Users = []User{}
	}
	if r.Suppliers == nil {
		r.Suppliers = []Supplier{}
	}
	if r.APIConfigs == nil {
		r.APIConfigs = []APIConfig{}
	}
	return r
}

// SearchCounts maps a category name to its number of matches.
type SearchCounts map[string]int

// SearchResponse is the body of GET /search/?q=.
type SearchResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Query   string        `json:"query"`
	Results SearchResults `json:"results"`
	Counts  SearchCounts  `json:"counts"`
}
