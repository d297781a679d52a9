package api

import "fmt"

// RequestError is a transport-level failure: the gateway answered with a
// non-success HTTP status. Gateway business errors never use this type.
type RequestError struct {
	StatusCode int
	Body       string
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status: %d message: %s", r.StatusCode, r.Body)
}
