package attendance

import (
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware(jwtSecret))
	{
		attendance.GET("/mine", handler.GetMine)

		attendance.POST("", middleware.AdminRequired(), handler.Mark)
		attendance.GET("", middleware.AdminRequired(), handler.GetByDate)
		attendance.GET("/employee/:id", middleware.AdminRequired(), handler.GetEmployeeMonth)
	}
}
