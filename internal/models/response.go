package models

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
