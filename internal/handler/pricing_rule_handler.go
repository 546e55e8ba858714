package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// PricingRuleHandler handles markup rule management HTTP endpoints.
type PricingRuleHandler struct {
	orgService     *service.OrganizationService
	pricingService *service.PricingAdminService
}

// NewPricingRuleHandler constructs a PricingRuleHandler.
func NewPricingRuleHandler(orgService *service.OrganizationService, pricingService *service.PricingAdminService) *PricingRuleHandler {
	return &PricingRuleHandler{orgService: orgService, pricingService: pricingService}
}

func (h *PricingRuleHandler) resolveOrg(c *gin.Context) (int, bool) {
	org, err := h.orgService.GetOrganizationByPublicID(c.Param("id"))
	if err != nil {
		utils.Error(c, 404, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return 0, false
	}
	return org.ID, true
}

// ListRules handles GET /v1/admin/organizations/:id/pricing-rules
func (h *PricingRuleHandler) ListRules(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	rules, err := h.pricingService.ListRules(orgID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve pricing rules")
		return
	}

	utils.Success(c, 200, "Pricing rules retrieved", gin.H{
		"rules": rules,
		"total": len(rules),
	})
}

// GetRule handles GET /v1/admin/organizations/:id/pricing-rules/:ruleID
func (h *PricingRuleHandler) GetRule(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}
	ruleID, err := strconv.Atoi(c.Param("ruleID"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid rule ID")
		return
	}

	rule, err := h.pricingService.GetRule(orgID, ruleID)
	if err != nil {
		utils.Error(c, 404, "RULE_NOT_FOUND", "Pricing rule not found")
		return
	}

	utils.Success(c, 200, "Pricing rule retrieved", rule)
}

// CreateRule handles POST /v1/admin/organizations/:id/pricing-rules
func (h *PricingRuleHandler) CreateRule(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}

	var req service.PricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rule, err := h.pricingService.CreateRule(orgID, &req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCountry) {
			utils.Error(c, 400, "INVALID_COUNTRY", err.Error())
			return
		}
		utils.Error(c, 400, "INVALID_RULE", err.Error())
		return
	}

	utils.Success(c, 201, "Pricing rule created successfully", rule)
}

// UpdateRule handles PUT /v1/admin/organizations/:id/pricing-rules/:ruleID
func (h *PricingRuleHandler) UpdateRule(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}
	ruleID, err := strconv.Atoi(c.Param("ruleID"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid rule ID")
		return
	}

	var req service.PricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rule, err := h.pricingService.UpdateRule(orgID, ruleID, &req)
	if err != nil {
		if errors.Is(err, utils.ErrRuleNotFound) {
			utils.Error(c, 404, "RULE_NOT_FOUND", "Pricing rule not found")
			return
		}
		if errors.Is(err, utils.ErrInvalidCountry) {
			utils.Error(c, 400, "INVALID_COUNTRY", err.Error())
			return
		}
		utils.Error(c, 400, "INVALID_RULE", err.Error())
		return
	}

	utils.Success(c, 200, "Pricing rule updated successfully", rule)
}

// DeleteRule handles DELETE /v1/admin/organizations/:id/pricing-rules/:ruleID
func (h *PricingRuleHandler) DeleteRule(c *gin.Context) {
	orgID, ok := h.resolveOrg(c)
	if !ok {
		return
	}
	ruleID, err := strconv.Atoi(c.Param("ruleID"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid rule ID")
		return
	}

	if err := h.pricingService.DeleteRule(orgID, ruleID); err != nil {
		if errors.Is(err, utils.ErrRuleNotFound) {
			utils.Error(c, 404, "RULE_NOT_FOUND", "Pricing rule not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete pricing rule")
		return
	}

	utils.Success(c, 200, "Pricing rule deleted successfully", nil)
}
