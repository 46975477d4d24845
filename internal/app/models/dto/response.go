package dto

import "time"

// APIResponse is the standard success envelope: a message/success pair with
// an optional data payload.
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewAPIResponse creates a success envelope with a payload
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success envelope with no payload
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}
