package storefrontserver

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	cartapp "storefront-demo/internal/domains/cart/application"
	catalogapp "storefront-demo/internal/domains/catalog/application"
	catalogports "storefront-demo/internal/domains/catalog/ports"
	launcherapp "storefront-demo/internal/domains/launcher/application"
	apierrors "storefront-demo/internal/shared/errors"
)

// respondServiceError maps application errors onto RFC 7807 responses. Every
// error aborts only the offending operation; nothing propagates uncaught.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound):
		apierrors.Respond(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, cartapp.ErrEmptySelection):
		apierrors.Respond(c, apierrors.ErrUnprocessable.WithDetail(err.Error()))
	case errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, launcherapp.ErrInvalidInput):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		apierrors.RespondError(c, err)
	}
}

func respondBadRequest(c *gin.Context, err error) {
	apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

// parseIndexParam reads a cart index path parameter. A malformed index is
// rejected before reaching the service.
func parseIndexParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	index, err := strconv.Atoi(raw)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrValidation.
			WithDetail("cart index must be an integer").
			WithExtension("index", raw))
		return 0, false
	}
	return index, true
}
