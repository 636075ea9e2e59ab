package repology

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the source has no such resource.
var ErrNotFound = errors.New("not found")

// HTTPError is a non-success response from the remote API.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("repology API error %d (%s): %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("repology API error %d (%s)", e.StatusCode, e.URL)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *HTTPError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
