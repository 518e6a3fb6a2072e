package utils

import "time"

// APIResponse is the envelope every attendance endpoint replies with.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PartialResponse reports an operation that changed state but could not be
// persisted. Success stays true; the storage error rides along so the
// operator knows to retry the save.
func PartialResponse(message string, data interface{}, saveErr string) APIResponse {
	resp := SuccessResponse(message, data)
	resp.Error = saveErr
	return resp
}

func ErrorResponse(message, errDetail string) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		Error:     errDetail,
		Timestamp: time.Now(),
	}
}
