package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// SearchParams tunes a semantic search. MinScore must already be
// normalized to [0,1]; use NormalizeMinScore on raw user input.
type SearchParams struct {
	Collection string
	TopK       int
	MinScore   float64
	Filters    json.RawMessage
}

// NormalizeMinScore maps user-facing threshold input onto the API's
// [0,1] scale. Values in (1,100] are read as percentages, values in
// [0,1] pass through, everything else is rejected.
func NormalizeMinScore(v float64) (float64, error) {
	switch {
	case v >= 0 && v <= 1:
		return v, nil
	case v > 1 && v <= 100:
		return v / 100, nil
	}
	return 0, fmt.Errorf("min score must be between 0 and 1 (or a percentage up to 100), got %g", v)
}

// Search runs a semantic vector search across the project, or within
// one collection when params.Collection is set.
func (c *Client) Search(ctx context.Context, query string, params SearchParams) (*SearchResponse, error) {
	body := map[string]any{"query": query}
	if params.Collection != "" {
		body["collection"] = params.Collection
	}
	if params.TopK > 0 {
		body["topK"] = params.TopK
	}
	if params.MinScore > 0 {
		body["minScore"] = params.MinScore
	}
	if len(params.Filters) > 0 {
		body["filters"] = params.Filters
	}
	var out SearchResponse
	if err := c.post(ctx, c.projectPath("search"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
