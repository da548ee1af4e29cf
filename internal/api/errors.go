package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FallbackMessage is shown when the server gives no usable error text.
const FallbackMessage = "An unknown error occurred."

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError covers a non-2xx status or a body carrying an "error" field.
type ServerError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = FallbackMessage
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Status, msg)
}

// DecodeError means a successful response body could not be understood.
type DecodeError struct {
	Endpoint string
	Body     json.RawMessage
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Message converts any client error into the single line shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var se *ServerError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return FallbackMessage
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return fmt.Sprintf("The server sent a response that could not be read (%v).", de.Err)
	}

	var te *TransportError
	if errors.As(err, &te) {
		return fmt.Sprintf("Could not reach the server (%v).", te.Err)
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}
