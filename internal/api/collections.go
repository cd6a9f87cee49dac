package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// MaxBatchOperations is the most operations one batch call accepts.
const MaxBatchOperations = 50

// operationTypes enumerates the batch entry types the server executes.
var operationTypes = map[string]bool{
	"set":    true,
	"get":    true,
	"add":    true,
	"update": true,
	"remove": true,
	"forget": true,
	"clear":  true,
}

// Add appends one JSON document to a collection, creating the
// collection on first use. Returns the server-assigned id.
func (c *Client) Add(ctx context.Context, collection string, value json.RawMessage) (*AddResponse, error) {
	body := map[string]any{"collection": collection, "value": value}
	var out AddResponse
	if err := c.post(ctx, c.projectPath("add"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMany appends a batch of documents in one call. Ids come back in
// input order.
func (c *Client) AddMany(ctx context.Context, collection string, items []json.RawMessage) (*AddManyResponse, error) {
	body := map[string]any{"collection": collection, "items": items}
	var out AddManyResponse
	if err := c.post(ctx, c.projectPath("add-many"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WhereParams narrows a collection listing. Zero values are omitted
// from the request and the server applies its defaults.
type WhereParams struct {
	Filter json.RawMessage
	Limit  int
	Sort   string
}

// Where lists a collection's items, optionally filtered.
func (c *Client) Where(ctx context.Context, collection string, params WhereParams) (*WhereResponse, error) {
	body := map[string]any{"collection": collection}
	if len(params.Filter) > 0 {
		body["filter"] = params.Filter
	}
	if params.Limit > 0 {
		body["limit"] = params.Limit
	}
	if params.Sort != "" {
		body["sort"] = params.Sort
	}
	var out WhereResponse
	if err := c.post(ctx, c.projectPath("where"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Count returns a collection's cardinality, optionally filtered.
func (c *Client) Count(ctx context.Context, collection string, filter json.RawMessage) (*CountResponse, error) {
	body := map[string]any{"collection": collection}
	if len(filter) > 0 {
		body["filter"] = filter
	}
	var out CountResponse
	if err := c.post(ctx, c.projectPath("count"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces one item's value by id.
func (c *Client) Update(ctx context.Context, collection, id string, value json.RawMessage) error {
	body := map[string]any{"collection": collection, "value": value}
	return c.post(ctx, c.projectPath("update", id), body, nil)
}

// Remove deletes one item by id.
func (c *Client) Remove(ctx context.Context, collection, id string) error {
	body := map[string]string{"collection": collection}
	return c.post(ctx, c.projectPath("remove", id), body, nil)
}

// Clear wipes an entire collection and reports the removed count.
func (c *Client) Clear(ctx context.Context, collection string) (*ClearResponse, error) {
	body := map[string]string{"collection": collection}
	var out ClearResponse
	if err := c.post(ctx, c.projectPath("clear"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateOperations checks a batch's shape before it goes anywhere
// near the network: non-empty, within the size cap, every entry a
// known type. Field-level validation stays server-side.
func ValidateOperations(ops []Operation) error {
	if len(ops) == 0 {
		return fmt.Errorf("batch requires at least one operation")
	}
	if len(ops) > MaxBatchOperations {
		return fmt.Errorf("batch supports at most %d operations, got %d", MaxBatchOperations, len(ops))
	}
	for i, op := range ops {
		if !operationTypes[op.Type] {
			return fmt.Errorf("operation %d: unknown type %q", i, op.Type)
		}
	}
	return nil
}

// Batch executes up to MaxBatchOperations operations atomically.
// The call can succeed overall while individual operations fail;
// callers must inspect per-result Success flags.
func (c *Client) Batch(ctx context.Context, ops []Operation) (*BatchResponse, error) {
	if err := ValidateOperations(ops); err != nil {
		return nil, err
	}
	body := map[string]any{"operations": ops}
	var out BatchResponse
	if err := c.post(ctx, c.projectPath("batch"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
