package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/middleware"
	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// StorefrontHandler handles the storefront pricing HTTP endpoints.
type StorefrontHandler struct {
	storefrontService *service.StorefrontService
}

// NewStorefrontHandler constructs a StorefrontHandler.
func NewStorefrontHandler(storefrontService *service.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{storefrontService: storefrontService}
}

// destination resolves the country from query input, writing the error
// response on failure.
func (h *StorefrontHandler) destination(c *gin.Context, country, phone string) (string, bool) {
	cc, err := h.storefrontService.ResolveCountry(country, phone)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPhoneNumber) {
			utils.Error(c, 400, "INVALID_PHONE_NUMBER", "Phone number could not be parsed")
			return "", false
		}
		utils.Error(c, 400, "INVALID_COUNTRY", err.Error())
		return "", false
	}
	return cc, true
}

// ListProducts handles GET /v1/storefront/products?country=CA or ?phone=+14165550123
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	cc, ok := h.destination(c, c.Query("country"), c.Query("phone"))
	if !ok {
		return
	}

	org := middleware.GetOrganization(c)
	listing, err := h.storefrontService.ListProducts(c.Request.Context(), org, middleware.IsSandbox(c), cc)
	if err != nil {
		if errors.Is(err, utils.ErrCatalogUnavailable) {
			utils.Error(c, 502, "CATALOG_UNAVAILABLE", "Upstream catalog is unavailable")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to price products")
		return
	}

	utils.Success(c, 200, "Products retrieved successfully", listing)
}

// GetProductPrice handles GET /v1/storefront/products/:sku/price?country=CA&quantity=2
func (h *StorefrontHandler) GetProductPrice(c *gin.Context) {
	cc, ok := h.destination(c, c.Query("country"), c.Query("phone"))
	if !ok {
		return
	}

	quantity := 1
	if v := c.Query("quantity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.Error(c, 400, "INVALID_QUANTITY", "quantity must be an integer")
			return
		}
		quantity = n
	}

	org := middleware.GetOrganization(c)
	quote, err := h.storefrontService.PriceProduct(c.Request.Context(), org, middleware.IsSandbox(c), c.Param("sku"), cc, quantity)
	if err != nil {
		h.writeQuoteError(c, err)
		return
	}

	utils.Success(c, 200, "Product priced successfully", quote)
}

// CreateQuote handles POST /v1/storefront/quotes
//
// The purchase-shaped entry point: same computation as the price
// endpoint, quantity required. Quotes never consume discount usage.
func (h *StorefrontHandler) CreateQuote(c *gin.Context) {
	var req struct {
		SkuCode  string `json:"skuCode" binding:"required"`
		Country  string `json:"country"`
		Phone    string `json:"phone"`
		Quantity int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	cc, ok := h.destination(c, req.Country, req.Phone)
	if !ok {
		return
	}

	org := middleware.GetOrganization(c)
	quote, err := h.storefrontService.PriceProduct(c.Request.Context(), org, middleware.IsSandbox(c), req.SkuCode, cc, req.Quantity)
	if err != nil {
		h.writeQuoteError(c, err)
		return
	}

	utils.Success(c, 201, "Quote created successfully", quote)
}

func (h *StorefrontHandler) writeQuoteError(c *gin.Context, err error) {
	var qtyErr *service.QuantityError
	switch {
	case errors.As(err, &qtyErr):
		utils.Error(c, 400, "INVALID_QUANTITY", qtyErr.Reason)
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found in catalog")
	case errors.Is(err, utils.ErrProductUnavailable):
		utils.Error(c, 404, "PRODUCT_UNAVAILABLE", "Product is not sold in this destination")
	case errors.Is(err, utils.ErrCountryDisabled):
		utils.Error(c, 404, "COUNTRY_DISABLED", "Storefront does not sell into this country")
	case errors.Is(err, utils.ErrCatalogUnavailable):
		utils.Error(c, 502, "CATALOG_UNAVAILABLE", "Upstream catalog is unavailable")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to price product")
	}
}
