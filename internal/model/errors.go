package model

// ErrorResponse is the error envelope for both endpoints.
// 400 responses carry a field-level message; 500 responses carry a
// fixed generic message — provider error details are logged server-side
// and never echoed to the caller.
type ErrorResponse struct {
	Error string `json:"error"`
}
