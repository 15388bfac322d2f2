package store

import "fmt"

// ValidationError is a failure raised locally, before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// ErrCustomerRequired is returned by Checkout when no customer is selected.
var ErrCustomerRequired = &ValidationError{Field: "customer_id", Message: "customer is required"}
