package response

// StandardApiResponse is the envelope for every cinely API reply. Message
// carries the human-readable outcome, including the legacy seat-selection
// info strings that clients match on verbatim.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}
