package backend

import (
	"encoding/json"
	"fmt"
)

// BackendError is a non-2xx response. Message carries the server's own
// error text verbatim when the body had one.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("o servidor recusou a operação (HTTP %d)", e.Status)
}

func newBackendError(status int, body []byte) *BackendError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	return &BackendError{Status: status, Message: msg}
}
