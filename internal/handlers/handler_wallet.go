package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(walletService portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{
		walletService: walletService,
	}
}

// getWallet godoc
// @Summary Get my wallet
// @Description Retrieves the authenticated user's wallet, creating it on first access
// @Tags wallet
// @Produce  json
// @Success 200 {object} dto.WalletResponse "The user's wallet"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /wallet [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wallet, err := h.walletService.GetWallet(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "retrieve wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// listWalletTransactions godoc
// @Summary List my wallet transactions
// @Description Retrieves a paginated list of the authenticated user's wallet transactions
// @Tags wallet
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListWalletTransactionsResponse "The user's transactions"
// @Router /wallet/transactions [get]
func (h *walletHandler) listWalletTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListWalletTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.walletService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "list wallet transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerWalletRoutes registers wallet routes
func registerWalletRoutes(group *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallet := group.Group("/wallet")
	{
		wallet.GET("", h.getWallet)
		wallet.GET("/transactions", h.listWalletTransactions)
	}
}
