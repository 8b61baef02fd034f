// models/response.go
package models

// Response model for REST handlers
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Envelope is the uniform reply shape on socket response events. Success and
// failure share the same channel and are told apart only by Done.
type Envelope struct {
	Done    bool        `json:"done"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Ok wraps data in a successful envelope.
func Ok(data interface{}) Envelope {
	return Envelope{Done: true, Data: data}
}

// OkMessage wraps data plus a human-readable message.
func OkMessage(data interface{}, message string) Envelope {
	return Envelope{Done: true, Data: data, Message: message}
}

// Fail converts an error into a failed envelope.
func Fail(err error) Envelope {
	return Envelope{Done: false, Error: err.Error()}
}

// FailMessage reports a business failure without an underlying error value.
func FailMessage(message string) Envelope {
	return Envelope{Done: false, Message: message}
}
