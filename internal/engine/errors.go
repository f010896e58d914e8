package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownActivity matches any UnknownActivityError via errors.Is.
var ErrUnknownActivity = errors.New("unknown activity")

// UnknownActivityError is returned for identifiers outside the catalog.
type UnknownActivityError struct {
	Input string
}

func (e UnknownActivityError) Error() string {
	return fmt.Sprintf("unknown activity %q", e.Input)
}

func (e UnknownActivityError) Is(target error) bool {
	return target == ErrUnknownActivity
}
