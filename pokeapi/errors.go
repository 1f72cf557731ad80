package pokeapi

import (
	"errors"
	"fmt"
)

var (
	ErrStatus     = errors.New("unexpected status")
	ErrIDMismatch = errors.New("id mismatch")
	ErrEmptyRange = errors.New("catalog range must contain at least one id")
)

// FetchError records why a single entry could not be loaded.
type FetchError struct {
	ID  int
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch #%03d: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
