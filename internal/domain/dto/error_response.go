package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx answer.
//
// Fields:
//   - Message: human-readable summary safe to show to clients.
//   - ErrorDetails: underlying error text, when there is one.
//   - Timestamp: when the error was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid chart parameter"`
	ErrorDetails string    `json:"error,omitempty" example:"brick size must be positive, got 0"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-12T14:03:11Z"`
}

// NewErrorResponse builds an ErrorResponse, copying err's text into ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error makes ErrorResponse usable as an error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
