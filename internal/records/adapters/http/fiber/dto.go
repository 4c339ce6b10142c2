package fiber

// FetchRequest is the body of /fetch-analytics.
type FetchRequest struct {
	APIKey string   `json:"apiKey" example:"site_123"`
	Limit  int      `json:"limit" example:"100"`
	Types  []string `json:"types,omitempty"`
}

type RecordResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type" example:"pageview"`
	Event      string         `json:"event,omitempty"`
	URL        string         `json:"url,omitempty"`
	Referrer   string         `json:"referrer,omitempty"`
	Data       map[string]any `json:"data"`
	Timestamp  string         `json:"ts" example:"2025-12-07T10:00:00.000Z"`
	ReceivedAt string         `json:"receivedAt"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid analytics query"`
}
