package loader

import (
	"fmt"

	"github.com/go-faster/errors"

	"resume-page/internal/shared/storage/object"
)

// ErrDataUnavailable is the single failure kind of the loader. Transport and
// parse failures both match it with errors.Is.
var ErrDataUnavailable = errors.New("resume data unavailable")

// UnavailableError carries the location and cause of a failed load.
type UnavailableError struct {
	Location string
	Cause    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("load resume data from %s: %v", e.Location, e.Cause)
}

// Detail is the human-readable failure reason without the location prefix.
func (e *UnavailableError) Detail() string {
	if e.Cause == nil {
		return ErrDataUnavailable.Error()
	}
	return e.Cause.Error()
}

// Status returns the transport status of the failure, or 0 when the failure
// did not carry one (parse errors, network errors).
func (e *UnavailableError) Status() int {
	return object.StatusCode(e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrDataUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// AsUnavailable extracts an UnavailableError from err's chain.
func AsUnavailable(err error) (*UnavailableError, bool) {
	var unavailable *UnavailableError
	if errors.As(err, &unavailable) {
		return unavailable, true
	}
	return nil, false
}
