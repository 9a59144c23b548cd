package rewards

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rewards := rg.Group("/rewards")
	{
		rewards.GET("", h.GetMyRewards)
		rewards.POST("/redeem", h.RedeemPoints)
		rewards.GET("/transactions", h.ListMyTransactions)
	}
}
