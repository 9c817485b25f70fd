package application

import (
	"errors"
	"fmt"

	"storefront-demo/internal/domains/cart/domain"
)

var (
	// ErrInvalidInput signals the request referenced an index or delta the
	// cart cannot act on. The offending operation is aborted with no state
	// change.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrEmptySelection signals checkout was requested with nothing selected.
	ErrEmptySelection = errors.New("nothing selected for checkout")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
