package application

import (
	"errors"
	"fmt"

	"storefront-demo/internal/domains/launcher/domain"
)

var (
	// ErrInvalidInput signals a malformed pointer event or view name.
	ErrInvalidInput = errors.New("invalid launcher input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidPointerKind) ||
		errors.Is(err, domain.ErrInvalidPointerFamily) ||
		errors.Is(err, domain.ErrInvalidViewport) ||
		errors.Is(err, domain.ErrInvalidView) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
