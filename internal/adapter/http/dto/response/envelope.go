package response

import "time"

// APIResponse is the standard success envelope.
type APIResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

func OK(data any) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func OKWithMessage(data any, message string) APIResponse {
	r := OK(data)
	r.Message = message
	return r
}
