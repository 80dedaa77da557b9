package domain

import "errors"

// ErrMissingFields signals that one or more required audit fields are empty.
var ErrMissingFields = errors.New("missing required fields")

// AuditRequest carries the form fields submitted for a business audit.
// Email and Website are accepted and validated but never rendered in the
// document; they are reserved for follow-up use.
type AuditRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Field   string `json:"field"`
	Website string `json:"website"`
	Problem string `json:"problem"`
}

// Validate checks that every required field is present. Website is optional.
func (r AuditRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Field == "" || r.Problem == "" {
		return ErrMissingFields
	}
	return nil
}
