package report

import (
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(jwtSecret), middleware.AdminRequired())
	{
		reports.GET("/monthly", handler.GetMonthly)
		reports.GET("/summary", handler.GetSummary)
		reports.GET("/monthly/export", handler.ExportMonthly)
		reports.GET("/leaves/export", handler.ExportLeaves)
	}
}
