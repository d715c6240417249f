package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	// --- Website generation ---
	websiteGroup := router.Group("/website")
	{
		websiteGroup.POST("/generate", h.GenerateWebsite)
		websiteGroup.POST("/enhance-section", h.EnhanceSection)
		websiteGroup.POST("/export", h.ExportWebsite)
		websiteGroup.GET("/options", h.Options)
	}

	// --- Operations ---
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
