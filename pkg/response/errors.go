package response

import "net/http"

// HTTPError carries the status a domain error should be reported with.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

func statusOf(err error) int {
	if he, ok := err.(*HTTPError); ok && he.Status != 0 {
		return he.Status
	}
	return http.StatusBadRequest
}
