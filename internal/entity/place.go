package entity

// PlaceReference points at a place on an external map. Within one result set
// it is identified by its URI.
type PlaceReference struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SearchResult is what a single search produced. It lives in view state only.
type SearchResult struct {
	Summary string           `json:"summary"`
	Shops   []PlaceReference `json:"shops"`
	Prompt  string           `json:"prompt"`
}
