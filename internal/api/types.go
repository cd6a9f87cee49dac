package api

import (
	"encoding/json"
	"time"
)

// errorEnvelope is the shape every failing endpoint responds with.
type errorEnvelope struct {
	Error          string         `json:"error"`
	Details        map[string]any `json:"details"`
	UpgradeMessage string         `json:"upgradeMessage"`
}

// NewProjectResponse is returned by project creation. When an email is
// supplied the key is withheld until the verification code round-trip
// completes.
type NewProjectResponse struct {
	Success              bool   `json:"success"`
	Project              string `json:"project"`
	APIKey               string `json:"apiKey"`
	RequiresVerification bool   `json:"requiresVerification"`
}

// ClaimResponse is returned by the claim verification step. The key it
// carries supersedes the anonymous key for the project.
type ClaimResponse struct {
	Success bool   `json:"success"`
	APIKey  string `json:"apiKey"`
}

// GetResponse carries a single key-value lookup result.
type GetResponse struct {
	Success bool            `json:"success"`
	Value   json.RawMessage `json:"value"`
}

// AddResponse carries the server-assigned id of a new collection item.
type AddResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// AddManyResponse carries the ids of a bulk insert, in input order.
type AddManyResponse struct {
	Success bool     `json:"success"`
	IDs     []string `json:"ids"`
	Count   int      `json:"count"`
}

// Item is a collection member as the server returns it.
type Item struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection,omitempty"`
	Value      json.RawMessage `json:"value"`
	CreatedAt  time.Time       `json:"createdAt,omitempty"`
	UpdatedAt  time.Time       `json:"updatedAt,omitempty"`
}

// WhereResponse carries a filtered collection query result.
type WhereResponse struct {
	Success bool   `json:"success"`
	Items   []Item `json:"items"`
}

// CountResponse carries a collection cardinality.
type CountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// ClearResponse reports how many items a collection wipe removed.
type ClearResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// SearchResult is one semantic search hit. Score is the similarity in
// [0,1], highest first.
type SearchResult struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection,omitempty"`
	Key        string          `json:"key,omitempty"`
	Score      float64         `json:"score"`
	Value      json.RawMessage `json:"value"`
}

// SearchResponse carries ranked vector search hits.
type SearchResponse struct {
	Success bool           `json:"success"`
	Results []SearchResult `json:"results"`
}

// Operation is one entry in an atomic batch. Which fields apply
// depends on Type: key-value ops use Name, collection ops use
// Collection and sometimes ID.
type Operation struct {
	Type       string          `json:"type"`
	Name       string          `json:"name,omitempty"`
	Collection string          `json:"collection,omitempty"`
	ID         string          `json:"id,omitempty"`
	Value      json.RawMessage `json:"value,omitempty"`
}

// BatchResult is the per-operation outcome of a batch. Operations that
// fail inside an otherwise-accepted batch report Success false here.
type BatchResult struct {
	Success bool            `json:"success"`
	Type    string          `json:"type,omitempty"`
	ID      string          `json:"id,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// BatchResponse carries the outcome of an atomic multi-operation call.
type BatchResponse struct {
	Success       bool          `json:"success"`
	TransactionID string        `json:"transactionId,omitempty"`
	Results       []BatchResult `json:"results"`
}

// UploadResponse is returned once a direct upload is stored.
type UploadResponse struct {
	Success  bool   `json:"success"`
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size,omitempty"`
	URL      string `json:"url,omitempty"`
}

// UploadURLResponse carries a pre-signed URL for a browser-side upload.
type UploadURLResponse struct {
	Success   bool   `json:"success"`
	UploadURL string `json:"uploadUrl"`
	FileID    string `json:"fileId"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// File is stored-file metadata. Contents are fetched through URL, not
// through the API itself.
type File struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType,omitempty"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// FileListResponse carries the project's stored files.
type FileListResponse struct {
	Success bool   `json:"success"`
	Files   []File `json:"files"`
}

// FileResponse carries a single file lookup.
type FileResponse struct {
	Success bool `json:"success"`
	File    File `json:"file"`
}

// TokenResponse carries a short-lived streaming token.
type TokenResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// BroadcastResponse reports a pub/sub publish.
type BroadcastResponse struct {
	Success    bool `json:"success"`
	Subscriber int  `json:"subscribers,omitempty"`
}

// VerifyOTPResponse reports whether a standalone code check passed.
type VerifyOTPResponse struct {
	Success  bool `json:"success"`
	Verified bool `json:"verified"`
}

// FunctionInfo is a deployed serverless function's metadata.
type FunctionInfo struct {
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	Size      int64     `json:"size,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// FunctionListResponse carries the project's deployed functions.
type FunctionListResponse struct {
	Success   bool           `json:"success"`
	Functions []FunctionInfo `json:"functions"`
}

// FunctionWriteResponse reports a deploy and the version it produced.
type FunctionWriteResponse struct {
	Success bool   `json:"success"`
	Version int    `json:"version"`
	URL     string `json:"url,omitempty"`
}

// FunctionDetail is a function's full record including source.
type FunctionDetail struct {
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	Config    json.RawMessage `json:"config,omitempty"`
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}

// FunctionReadResponse carries one function's source and config.
type FunctionReadResponse struct {
	Success  bool           `json:"success"`
	Function FunctionDetail `json:"function"`
}

// FunctionLogEntry is one line of serverless execution output.
type FunctionLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level,omitempty"`
	Message   string    `json:"message"`
}

// FunctionLogsResponse carries recent execution logs, newest last.
type FunctionLogsResponse struct {
	Success bool               `json:"success"`
	Logs    []FunctionLogEntry `json:"logs"`
}

// SecretInfo is secret metadata. Values are write-only and never
// returned by the API.
type SecretInfo struct {
	Name      string    `json:"name"`
	Functions []string  `json:"functions,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// SecretListResponse carries the project's secret names.
type SecretListResponse struct {
	Success bool         `json:"success"`
	Secrets []SecretInfo `json:"secrets"`
}

// SecretSetManyResponse reports a bulk secret write.
type SecretSetManyResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// Backup is one point-in-time snapshot of the project's data.
type Backup struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Size      int64     `json:"size,omitempty"`
	Type      string    `json:"type,omitempty"`
}

// TimelineResponse carries the restore points available to a project.
type TimelineResponse struct {
	Success bool     `json:"success"`
	Backups []Backup `json:"backups"`
}

// RestoreResponse reports a restore. When the restore targeted a new
// project it carries that project's fresh credentials.
type RestoreResponse struct {
	Success bool   `json:"success"`
	Project string `json:"project,omitempty"`
	APIKey  string `json:"apiKey,omitempty"`
}

// TrackEventResponse acknowledges an analytics event.
type TrackEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId,omitempty"`
}

// AnalyticsEvent is one recorded analytics event.
type AnalyticsEvent struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// QueryEventsResponse carries an analytics query result.
type QueryEventsResponse struct {
	Success bool             `json:"success"`
	Events  []AnalyticsEvent `json:"events"`
}
