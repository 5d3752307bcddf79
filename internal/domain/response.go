package domain

// SearchResponse represents the complete result of an itinerary search.
type SearchResponse struct {
	// SearchCriteria echoes the original search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Itineraries contains all direct and connecting itineraries,
	// ordered ascending by total duration
	Itineraries []Itinerary `json:"itineraries"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// SearchID uniquely identifies this search for log correlation
	SearchID string `json:"search_id"`

	// TotalResults is the total number of itineraries returned
	TotalResults int `json:"total_results"`

	// DirectResults is the number of single-segment itineraries
	DirectResults int `json:"direct_results"`

	// ConnectingResults is the number of multi-segment itineraries
	ConnectingResults int `json:"connecting_results"`

	// RoutesExplored is the number of connecting routes enumerated
	// through the graph before flight instances were matched
	RoutesExplored int `json:"routes_explored"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResponse creates a SearchResponse with the given criteria,
// itineraries, and metadata. A nil itinerary slice becomes an empty one so
// that "no results" serializes as an empty list, never null.
func NewSearchResponse(criteria SearchCriteria, itineraries []Itinerary, metadata SearchMetadata) *SearchResponse {
	if itineraries == nil {
		itineraries = []Itinerary{}
	}
	metadata.TotalResults = len(itineraries)

	return &SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Itineraries:    itineraries,
	}
}
