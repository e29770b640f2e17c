package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLocation is returned when the start or end location is empty
	ErrMissingLocation = errors.New("start and end locations are required")
	// ErrUnresolvedLocation is returned when a location cannot be geocoded
	ErrUnresolvedLocation = errors.New("location could not be resolved")
)

// ProviderError is a transport failure of a remote provider (geocoding or routing)
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
