package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// SettingsHandler handles storefront and resale settings HTTP endpoints.
type SettingsHandler struct {
	orgService     *service.OrganizationService
	pricingService *service.PricingAdminService
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(orgService *service.OrganizationService, pricingService *service.PricingAdminService) *SettingsHandler {
	return &SettingsHandler{orgService: orgService, pricingService: pricingService}
}

func (h *SettingsHandler) resolveOrg(c *gin.Context) (int, bool) {
	org, err := h.orgService.GetOrganizationByPublicID(c.Param("id"))
	if err != nil {
		utils.Error(c, 404, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return 0, false
	}
	return org.ID, true
}

// GetStorefrontSettings handles GET /v1/admin/organizations/:id/settings/storefront
func (h *SettingsHandler) GetStorefrontSettings(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	settings, err := h.pricingService.GetStorefrontSettings(orgID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve storefront settings")
		return
	}

	utils.Success(c, 200, "Storefront settings retrieved", settings)
}

// UpdateStorefrontSettings handles PUT /v1/admin/organizations/:id/settings/storefront
func (h *SettingsHandler) UpdateStorefrontSettings(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	var req service.StorefrontSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	settings, err := h.pricingService.UpdateStorefrontSettings(orgID, &req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCountry) {
			utils.Error(c, 400, "INVALID_COUNTRY", err.Error())
			return
		}
		utils.Error(c, 400, "INVALID_SETTINGS", err.Error())
		return
	}

	utils.Success(c, 200, "Storefront settings updated successfully", settings)
}

// GetResaleSettings handles GET /v1/admin/organizations/:id/resale/:sku
func (h *SettingsHandler) GetResaleSettings(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	settings, err := h.pricingService.GetResaleSettings(orgID, c.Param("sku"))
	if err != nil {
		utils.Error(c, 404, "SETTINGS_NOT_FOUND", "No resale settings for this product")
		return
	}

	utils.Success(c, 200, "Resale settings retrieved", settings)
}

// UpdateResaleSettings handles PUT /v1/admin/organizations/:id/resale/:sku
func (h *SettingsHandler) UpdateResaleSettings(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	var req service.ResaleSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	settings, err := h.pricingService.UpdateResaleSettings(orgID, c.Param("sku"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCountry) {
			utils.Error(c, 400, "INVALID_COUNTRY", err.Error())
			return
		}
		utils.Error(c, 400, "INVALID_SETTINGS", err.Error())
		return
	}

	utils.Success(c, 200, "Resale settings updated successfully", settings)
}

// DeleteResaleSettings handles DELETE /v1/admin/organizations/:id/resale/:sku
func (h *SettingsHandler) DeleteResaleSettings(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	if err := h.pricingService.DeleteResaleSettings(orgID, c.Param("sku")); err != nil {
		if errors.Is(err, utils.ErrSettingsNotFound) {
			utils.Error(c, 404, "SETTINGS_NOT_FOUND", "No resale settings for this product")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete resale settings")
		return
	}

	utils.Success(c, 200, "Resale settings deleted successfully", nil)
}
