package fiber

// TrackRequest is the body posted by the browser client.
// @Description Pageview or custom event sent by the konjac client
type TrackRequest struct {
	APIKey    string         `json:"apiKey" example:"site_123"`
	Type      string         `json:"type" example:"pageview"`
	Timestamp string         `json:"ts" example:"2025-12-07T10:00:00.000Z"`
	URL       string         `json:"url,omitempty" example:"https://shop.test/cart"`
	Referrer  string         `json:"referrer,omitempty"`
	Event     string         `json:"event,omitempty" example:"button_click"`
	Data      map[string]any `json:"data,omitempty"`
}

type TrackResponse struct {
	Status string `json:"status" example:"accepted"`
	ID     string `json:"id" example:"6f1c2a5e-8d34-4b7a-9a41-2f0b8e5d7c10"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
