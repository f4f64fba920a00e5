package atlas

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the Purview API.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// RequestID is the x-ms-client-request-id sent with the request,
	// useful when correlating with Azure-side diagnostics.
	RequestID string

	// Code is the Azure error code, if the body carried one.
	Code string

	// Message is the Azure error message, or the raw body when the
	// response was not a structured error.
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a response body, parsing the
// standard Azure error envelope when present.
func newAPIError(statusCode int, requestID string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		RequestID:  requestID,
		Message:    string(body),
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
