package application

import (
	"errors"
	"fmt"

	"storefront-demo/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a catalog invariant.
	ErrInvalidInput = errors.New("invalid catalog input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidProductID) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrInvalidRating) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
