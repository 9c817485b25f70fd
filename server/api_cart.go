package storefrontserver

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	carthttpmapper "storefront-demo/internal/domains/cart/adapters/http/mapper"
	cartports "storefront-demo/internal/domains/cart/ports"
	"storefront-demo/internal/platform/notify"
	apierrors "storefront-demo/internal/shared/errors"
)

// CartAPI wires HTTP transport with the cart bounded context service.
type CartAPI struct {
	service  cartports.Service
	notices  *notify.Center
	receipts cartports.ReceiptArchive
}

// NewCartAPI creates a CartAPI backed by the provided service and notice center.
func NewCartAPI(service cartports.Service, notices *notify.Center) CartAPI {
	return CartAPI{service: service, notices: notices}
}

// WithReceiptArchive attaches a persistent receipt archive; without one the
// receipt history endpoint serves an empty list.
func (api CartAPI) WithReceiptArchive(archive cartports.ReceiptArchive) CartAPI {
	api.receipts = archive
	return api
}

// Get /v2/cart
// Current cart projection: items, selection, totals
func (api *CartAPI) GetCart(c *gin.Context) {
	snap, err := api.service.Snapshot(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSnapshot(snap))
}

// Post /v2/cart/items
// Add a catalog product to the cart
func (api *CartAPI) AddItem(c *gin.Context) {
	var payload struct {
		ProductID *int64 `json:"productId"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	if payload.ProductID == nil {
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail("productId is required"))
		return
	}
	snap, err := api.service.AddItem(c.Request.Context(), sessionID(c), *payload.ProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSnapshot(snap))
}

// Post /v2/cart/items/all
// Add every catalog product not already in the cart
func (api *CartAPI) AddAllFromCatalog(c *gin.Context) {
	snap, err := api.service.AddAllFromCatalog(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSnapshot(snap))
}

// Patch /v2/cart/items/:index/quantity
// Adjust a line's quantity by a signed delta
func (api *CartAPI) ChangeQuantity(c *gin.Context) {
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	var payload struct {
		Delta *float64 `json:"delta"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	if payload.Delta == nil {
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail("delta is required"))
		return
	}
	// Quantity deltas must be whole numbers; a fractional delta is rejected
	// without touching the cart.
	if *payload.Delta != math.Trunc(*payload.Delta) {
		apierrors.Respond(c, apierrors.ErrValidation.
			WithDetail("delta must be an integer").
			WithExtension("delta", *payload.Delta))
		return
	}
	snap, err := api.service.ChangeQuantity(c.Request.Context(), sessionID(c), index, int(*payload.Delta))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSnapshot(snap))
}

// Delete /v2/cart/items/:index
// Remove a line from the cart
func (api *CartAPI) RemoveItem(c *gin.Context) {
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	snap, err := api.service.RemoveItem(c.Request.Context(), sessionID(c), index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSnapshot(snap))
}

// Post /v2/cart/items/:index/selection
// Flip a line's selection state
func (api *CartAPI) ToggleItemSelection(c *gin.Context) {
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	snap, err := api.service.ToggleItemSelection(c.Request.Context(), sessionID(c), index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSnapshot(snap))
}

// Post /v2/cart/selection/toggle-all
// Flip between full and empty selection
func (api *CartAPI) ToggleSelectAll(c *gin.Context) {
	snap, err := api.service.ToggleSelectAll(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSnapshot(snap))
}

// Post /v2/cart/checkout
// Hand the selected lines to the (simulated) settlement collaborator
func (api *CartAPI) Checkout(c *gin.Context) {
	receipt, err := api.service.Checkout(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromReceipt(receipt))
}

// Get /v2/cart/receipts
// The session's settled receipts, newest first
func (api *CartAPI) ListReceipts(c *gin.Context) {
	session := sessionID(c)
	if api.receipts == nil {
		c.JSON(http.StatusOK, []carthttpmapper.Receipt{})
		return
	}
	receipts, err := api.receipts.BySession(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	view := make([]carthttpmapper.Receipt, 0, len(receipts))
	for i := range receipts {
		view = append(view, carthttpmapper.FromReceipt(&receipts[i]))
	}
	c.JSON(http.StatusOK, view)
}

// Get /v2/notifications/current
// The notice currently displayed, if any
func (api *CartAPI) CurrentNotice(c *gin.Context) {
	if api.notices == nil {
		c.Status(http.StatusNoContent)
		return
	}
	notice := api.notices.Current()
	if notice == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, notice)
}
