package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// OrganizationHandler handles organization management HTTP endpoints.
type OrganizationHandler struct {
	orgService *service.OrganizationService
}

// NewOrganizationHandler constructs an OrganizationHandler.
func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// CreateOrganization handles POST /v1/admin/organizations
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	org, err := h.orgService.CreateOrganization(&req)
	if err != nil {
		if errors.Is(err, utils.ErrOrganizationExists) {
			utils.Error(c, 400, "ORGANIZATION_EXISTS", "Slug already in use")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create organization")
		return
	}

	utils.Success(c, 201, "Organization created successfully", org)
}

// GetOrganization handles GET /v1/admin/organizations/:id
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.orgService.GetOrganizationByPublicID(c.Param("id"))
	if err != nil {
		utils.Error(c, 404, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return
	}

	utils.Success(c, 200, "Organization retrieved", org)
}

// ListOrganizations handles GET /v1/admin/organizations
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page := 1
	limit := 50
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	orgs, total, err := h.orgService.ListOrganizations(page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve organizations")
		return
	}

	utils.SuccessWithPagination(c, 200, "Organizations retrieved", gin.H{
		"organizations": orgs,
	}, page, limit, total)
}

// UpdateOrganization handles PUT /v1/admin/organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	org, err := h.orgService.UpdateOrganization(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidOrganization) {
			utils.Error(c, 404, "ORGANIZATION_NOT_FOUND", "Organization not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update organization")
		return
	}

	utils.Success(c, 200, "Organization updated successfully", org)
}

// RegenerateKeys handles POST /v1/admin/organizations/:id/regenerate
func (h *OrganizationHandler) RegenerateKeys(c *gin.Context) {
	var req struct {
		KeyType string `json:"key_type" binding:"required"` // "live" or "sandbox"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "key_type is required")
		return
	}

	org, err := h.orgService.RegenerateKeys(c.Param("id"), req.KeyType)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidOrganization) {
			utils.Error(c, 404, "ORGANIZATION_NOT_FOUND", "Organization not found")
			return
		}
		if errors.Is(err, utils.ErrInvalidKeyType) {
			utils.Error(c, 400, "INVALID_KEY_TYPE", "key_type must be 'live' or 'sandbox'")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to regenerate keys")
		return
	}

	utils.Success(c, 200, "Keys regenerated successfully", org)
}
