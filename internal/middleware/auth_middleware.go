package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

// AuthMiddleware handles storefront API key authentication.
type AuthMiddleware struct {
	authService *service.AuthService
	rateLimiter *InvalidAuthRateLimiter
}

// NewAuthMiddleware constructs a new AuthMiddleware.
func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		rateLimiter: NewInvalidAuthRateLimiter(),
	}
}

// Handle returns a Gin middleware function that enforces authentication.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Bearer token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.handleAuthError(c, "INVALID_TOKEN", "Missing or invalid authorization header")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// 2. Validate API key (live or sandbox)
		org, isSandbox, err := m.authService.ValidateAPIKey(token)
		if err != nil || org == nil {
			m.handleAuthError(c, "INVALID_TOKEN", "Invalid API token")
			return
		}

		// 3. Check if organization is active
		if !org.IsActive {
			m.handleAuthError(c, "INVALID_ORGANIZATION", "Organization is not active")
			return
		}

		// 4. Cross-check the organization id header when supplied
		if !m.authService.ValidateOrgID(org, c.GetHeader("X-Org-Id")) {
			m.handleAuthError(c, "INVALID_ORGANIZATION", "Organization ID mismatch")
			return
		}

		// 5. Set context values
		c.Set("organization", org)
		c.Set("is_sandbox", isSandbox)
		c.Set("organization_id", org.ID)

		c.Next()
	}
}

func (m *AuthMiddleware) handleAuthError(c *gin.Context, code, message string) {
	// Apply rate limit for invalid auth attempts
	ip := c.ClientIP()
	if !m.rateLimiter.Allow(ip) {
		utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many invalid authentication attempts")
		c.Abort()
		return
	}

	utils.Error(c, 401, code, message)
	c.Abort()
}

// GetOrganization returns the authenticated organization from context.
func GetOrganization(c *gin.Context) *models.Organization {
	org, _ := c.Get("organization")
	if org == nil {
		return nil
	}
	return org.(*models.Organization)
}

// IsSandbox indicates whether the request is in sandbox mode.
func IsSandbox(c *gin.Context) bool {
	isSandbox, _ := c.Get("is_sandbox")
	if isSandbox == nil {
		return false
	}
	return isSandbox.(bool)
}
