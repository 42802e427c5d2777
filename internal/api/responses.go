// Package api defines shared HTTP response envelopes.
package api

// MessageResponse is a response body carrying a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse carries the aggregated list of validation and uniqueness
// violation messages for a rejected request.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}
