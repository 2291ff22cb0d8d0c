package dto

// Envelope is the inbound gateway response body. Success responses carry a
// message and a data object; error responses carry only the error text. The
// shape is part of the documented contract with the ordering platform.
type Envelope struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccessEnvelope creates a success response body
func NewSuccessEnvelope(message string, data any) Envelope {
	return Envelope{
		Message: message,
		Data:    data,
	}
}

// NewErrorEnvelope creates an error response body
func NewErrorEnvelope(message string) Envelope {
	return Envelope{
		Error: message,
	}
}
