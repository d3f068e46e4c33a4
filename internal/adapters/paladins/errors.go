package paladins

import (
	"fmt"

	"github.com/bnema/paladins-stats-cli/internal/domain"
)

// APICallError reports a failed request. It matches domain.ErrAPICall with errors.Is.
type APICallError struct {
	Method     string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *APICallError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: status %d: %v", domain.ErrAPICall, e.Method, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", domain.ErrAPICall, e.Method, e.Err)
}

func (e *APICallError) Unwrap() []error {
	return []error{domain.ErrAPICall, e.Err}
}
