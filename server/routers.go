// Package storefrontserver wires the gin transport for the storefront demo:
// catalog browsing, the session cart, the floating cart launcher, and the
// notification surface.
package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the per-context API handlers.
type ApiHandleFunctions struct {
	CatalogAPI  CatalogAPI
	CartAPI     CartAPI
	LauncherAPI LauncherAPI
}

// NewRouter returns a new router with the default gin middleware.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds all routes to the given gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(f ApiHandleFunctions) []Route {
	return []Route{
		{http.MethodGet, "/v2/catalog", f.CatalogAPI.ListProducts},
		{http.MethodGet, "/v2/catalog/:productId", f.CatalogAPI.GetProduct},

		{http.MethodGet, "/v2/cart", f.CartAPI.GetCart},
		{http.MethodPost, "/v2/cart/items", f.CartAPI.AddItem},
		{http.MethodPost, "/v2/cart/items/all", f.CartAPI.AddAllFromCatalog},
		{http.MethodPatch, "/v2/cart/items/:index/quantity", f.CartAPI.ChangeQuantity},
		{http.MethodDelete, "/v2/cart/items/:index", f.CartAPI.RemoveItem},
		{http.MethodPost, "/v2/cart/items/:index/selection", f.CartAPI.ToggleItemSelection},
		{http.MethodPost, "/v2/cart/selection/toggle-all", f.CartAPI.ToggleSelectAll},
		{http.MethodPost, "/v2/cart/checkout", f.CartAPI.Checkout},
		{http.MethodGet, "/v2/cart/receipts", f.CartAPI.ListReceipts},

		{http.MethodPost, "/v2/launcher/pointer", f.LauncherAPI.TrackPointer},
		{http.MethodGet, "/v2/launcher", f.LauncherAPI.GetHandle},
		{http.MethodGet, "/v2/ui/view", f.LauncherAPI.GetView},
		{http.MethodPut, "/v2/ui/view", f.LauncherAPI.SetView},

		{http.MethodGet, "/v2/notifications/current", f.CartAPI.CurrentNotice},
	}
}
