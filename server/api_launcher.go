package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	launcherhttpmapper "storefront-demo/internal/domains/launcher/adapters/http/mapper"
	launcherdomain "storefront-demo/internal/domains/launcher/domain"
	launcherports "storefront-demo/internal/domains/launcher/ports"
	apierrors "storefront-demo/internal/shared/errors"
)

// LauncherAPI wires HTTP transport with the floating cart launcher service.
type LauncherAPI struct {
	service launcherports.Service
}

// NewLauncherAPI creates a LauncherAPI backed by the provided service.
func NewLauncherAPI(service launcherports.Service) LauncherAPI {
	return LauncherAPI{service: service}
}

// Post /v2/launcher/pointer
// Feed one pointer sample through the drag/click recognizer
func (api *LauncherAPI) TrackPointer(c *gin.Context) {
	var payload launcherhttpmapper.PointerEvent
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	event, err := launcherhttpmapper.ToDomainEvent(payload)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	result, err := api.service.Track(c.Request.Context(), sessionID(c), event)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, launcherhttpmapper.FromTrackResult(result))
}

// Get /v2/launcher
// Current launcher handle bounding box
func (api *LauncherAPI) GetHandle(c *gin.Context) {
	handle, err := api.service.Handle(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, launcherhttpmapper.FromHandle(handle))
}

// Get /v2/ui/view
// Active storefront view
func (api *LauncherAPI) GetView(c *gin.Context) {
	view, err := api.service.View(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": string(view)})
}

// Put /v2/ui/view
// Switch between the products and cart views
func (api *LauncherAPI) SetView(c *gin.Context) {
	var payload struct {
		View string `json:"view"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := launcherdomain.ParseView(payload.View)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrValidation.
			WithDetail(err.Error()).
			WithExtension("view", payload.View))
		return
	}
	if err := api.service.SetView(c.Request.Context(), sessionID(c), view); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": string(view)})
}
