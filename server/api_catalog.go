package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogdomain "storefront-demo/internal/domains/catalog/domain"
	catalogports "storefront-demo/internal/domains/catalog/ports"
	apierrors "storefront-demo/internal/shared/errors"
)

// CatalogAPI exposes the read-only product directory.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Product is the transport-layer catalog entry.
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"imageUrl"`
	Price      float64 `json:"price"`
	OldPrice   float64 `json:"oldPrice"`
	Rating     float64 `json:"rating"`
	SalesLabel string  `json:"salesLabel"`
	Badge      string  `json:"badge,omitempty"`
	BadgeKind  string  `json:"badgeKind,omitempty"`
	Brand      string  `json:"brand,omitempty"`
	HasVideo   bool    `json:"hasVideo"`
}

// Get /v2/catalog
// List the product grid in display order
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	view := make([]Product, 0, len(products))
	for _, p := range products {
		view = append(view, fromDomainProduct(p))
	}
	c.JSON(http.StatusOK, view)
}

// Get /v2/catalog/:productId
// Find a product by id
func (api *CatalogAPI) GetProduct(c *gin.Context) {
	raw := c.Param("productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrValidation.
			WithDetail("product id must be an integer").
			WithExtension("productId", raw))
		return
	}
	product, err := api.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(product))
}

func fromDomainProduct(p *catalogdomain.Product) Product {
	if p == nil {
		return Product{}
	}
	return Product{
		ID:         p.ID,
		Name:       p.Name,
		ImageURL:   p.ImageURL,
		Price:      p.Price,
		OldPrice:   p.OldPrice,
		Rating:     p.Rating,
		SalesLabel: p.SalesLabel,
		Badge:      p.Badge,
		BadgeKind:  p.BadgeKind,
		Brand:      p.Brand,
		HasVideo:   p.HasVideo,
	}
}
