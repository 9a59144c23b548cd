package rewards

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type redeemRequest struct {
	Points int64  `json:"points" binding:"required,gt=0"`
	Reason string `json:"reason"`
}

func (h *Handler) GetMyRewards(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	account, err := h.service.GetOrCreateAccount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get reward account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": account.Balance})
}

func (h *Handler) RedeemPoints(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "redeem"
	}

	account, txn, err := h.service.Redeem(c.Request.Context(), userID, req.Points, reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPoints), errors.Is(err, ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to redeem points"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"account": account, "transaction": txn})
}

func (h *Handler) ListMyTransactions(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	txns, err := h.service.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}
