package api

import (
	"encoding/json"
	"errors"
	"fmt"
	gohttp "net/http"

	"github.com/reynaldiarya/flashpos/pkg/http"
)

// Error is a non-2xx backend response.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string // field-level messages from 422 responses
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// IsUnauthorized reports whether err is a 401 response, the signal the
// route guard treats as "session invalid".
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == gohttp.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == gohttp.StatusNotFound
}

// errorFrom parses the backend's error envelope `{message, errors}`.
func errorFrom(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(resp.Raw, &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Fields = body.Errors
	}
	return apiErr
}
