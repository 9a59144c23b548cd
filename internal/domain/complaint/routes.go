package complaint

import "github.com/gin-gonic/gin"

func RegisterRoutes(protected *gin.RouterGroup, handler *Handler) {
	complaints := protected.Group("/complaints")
	{
		complaints.POST("", handler.CreateComplaint)
		complaints.GET("", handler.ListComplaints)
		complaints.GET("/:id", handler.GetComplaint)
	}

	protected.GET("/community/feed", handler.CommunityFeed)
}

// RegisterOfficialRoutes attaches the review queue under the guarded
// officials group.
func RegisterOfficialRoutes(officials *gin.RouterGroup, handler *Handler) {
	officials.GET("/complaints", handler.ListForReview)
	officials.PATCH("/complaints/:id/status", handler.UpdateStatus)
}
