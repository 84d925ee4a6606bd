package handler

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler-api/internal/middleware"
)

// Routes wires the full HTTP surface onto r. The auth endpoints sit behind
// the per-IP limiter; everything under /api/meetings requires a bearer
// token.
func Routes(r *gin.Engine, h *Handler, secret string, rl *middleware.RateLimiter) {
	api := r.Group("/api")

	api.GET("/health", h.Health)

	authGroup := api.Group("/auth", middleware.RateLimit(rl))
	authGroup.POST("/login", h.Login)
	authGroup.POST("/register", h.Register)

	meetings := api.Group("/meetings", middleware.Auth(secret))
	meetings.GET("", h.ListMeetings)
	meetings.GET("/stats", h.MeetingStats)
	meetings.GET("/:id", h.GetMeeting)
	meetings.POST("", h.CreateMeeting)
	meetings.PUT("/:id", h.UpdateMeeting)
	meetings.DELETE("/:id", h.DeleteMeeting)
	meetings.POST("/:id/party-joined", h.PartyJoined)
	meetings.POST("/bulk-upload", h.BulkUpload)
}
