package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/utils"
	"github.com/TopsellHQ/topsell_api/pkg/dtone"
)

// BalanceHandler exposes the upstream account balances to operators.
type BalanceHandler struct {
	dtone *dtone.Client
}

// NewBalanceHandler constructs a BalanceHandler.
func NewBalanceHandler(dtoneClient *dtone.Client) *BalanceHandler {
	return &BalanceHandler{dtone: dtoneClient}
}

// GetBalances handles GET /v1/admin/balances
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	balances, err := h.dtone.GetBalances(c.Request.Context())
	if err != nil {
		utils.Error(c, 502, "PROVIDER_ERROR", "Failed to fetch provider balances")
		return
	}

	utils.Success(c, 200, "Balances retrieved", gin.H{
		"balances": balances,
	})
}
