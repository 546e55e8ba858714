package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// DiscountHandler handles discount management HTTP endpoints.
type DiscountHandler struct {
	orgService     *service.OrganizationService
	pricingService *service.PricingAdminService
}

// NewDiscountHandler constructs a DiscountHandler.
func NewDiscountHandler(orgService *service.OrganizationService, pricingService *service.PricingAdminService) *DiscountHandler {
	return &DiscountHandler{orgService: orgService, pricingService: pricingService}
}

func (h *DiscountHandler) resolveOrg(c *gin.Context) (int, bool) {
	org, err := h.orgService.GetOrganizationByPublicID(c.Param("id"))
	if err != nil {
		utils.Error(c, 404, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return 0, false
	}
	return org.ID, true
}

// ListDiscounts handles GET /v1/admin/organizations/:id/discounts
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	discounts, err := h.pricingService.ListDiscounts(orgID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve discounts")
		return
	}

	utils.Success(c, 200, "Discounts retrieved", gin.H{
		"discounts": discounts,
		"total":     len(discounts),
	})
}

// GetDiscount handles GET /v1/admin/organizations/:id/discounts/:discountID
func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}
	discountID, err := strconv.Atoi(c.Param("discountID"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid discount ID")
		return
	}

	discount, err := h.pricingService.GetDiscount(orgID, discountID)
	if err != nil {
		utils.Error(c, 404, "DISCOUNT_NOT_FOUND", "Discount not found")
		return
	}

	utils.Success(c, 200, "Discount retrieved", discount)
}

// CreateDiscount handles POST /v1/admin/organizations/:id/discounts
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	var req service.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	discount, err := h.pricingService.CreateDiscount(orgID, &req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCountry) {
			utils.Error(c, 400, "INVALID_COUNTRY", err.Error())
			return
		}
		utils.Error(c, 400, "INVALID_DISCOUNT", err.Error())
		return
	}

	utils.Success(c, 201, "Discount created successfully", discount)
}

// UpdateDiscount handles PUT /v1/admin/organizations/:id/discounts/:discountID
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}
	discountID, err := strconv.Atoi(c.Param("discountID"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid discount ID")
		return
	}

	var req service.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	discount, err := h.pricingService.UpdateDiscount(orgID, discountID, &req)
	if err != nil {
		if errors.Is(err, utils.ErrDiscountNotFound) {
			utils.Error(c, 404, "DISCOUNT_NOT_FOUND", "Discount not found")
			return
		}
		if errors.Is(err, utils.ErrInvalidCountry) {
			utils.Error(c, 400, "INVALID_COUNTRY", err.Error())
			return
		}
		utils.Error(c, 400, "INVALID_DISCOUNT", err.Error())
		return
	}

	utils.Success(c, 200, "Discount updated successfully", discount)
}

// DeleteDiscount handles DELETE /v1/admin/organizations/:id/discounts/:discountID
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}
	discountID, err := strconv.Atoi(c.Param("discountID"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid discount ID")
		return
	}

	if err := h.pricingService.DeleteDiscount(orgID, discountID); err != nil {
		if errors.Is(err, utils.ErrDiscountNotFound) {
			utils.Error(c, 404, "DISCOUNT_NOT_FOUND", "Discount not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete discount")
		return
	}

	utils.Success(c, 200, "Discount deleted successfully", nil)
}

// RedeemDiscount handles POST /v1/admin/organizations/:id/discounts/:discountID/redemptions
//
// This is the bookkeeping surface for confirmed purchases. Price
// lookups never consume usage; only this endpoint moves the counter.
func (h *DiscountHandler) RedeemDiscount(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}
	discountID, err := strconv.Atoi(c.Param("discountID"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid discount ID")
		return
	}

	discount, err := h.pricingService.RedeemDiscount(orgID, discountID)
	if err != nil {
		if errors.Is(err, utils.ErrDiscountNotFound) {
			utils.Error(c, 404, "DISCOUNT_NOT_FOUND", "Discount not found")
			return
		}
		if errors.Is(err, utils.ErrUsageExhausted) {
			utils.Error(c, 409, "DISCOUNT_USAGE_EXHAUSTED", "Discount usage budget is exhausted")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to record redemption")
		return
	}

	utils.Success(c, 200, "Redemption recorded", discount)
}
