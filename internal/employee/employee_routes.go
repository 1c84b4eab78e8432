package employee

import (
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtSecret))
	{
		employees.GET("/coworkers", handler.GetCoworkers)

		employees.GET("", middleware.AdminRequired(), handler.GetAll)
		employees.GET("/:id", middleware.AdminRequired(), handler.GetById)
		employees.PUT("/:id", middleware.AdminRequired(), handler.Update)
		employees.POST("/:id/deactivate", middleware.AdminRequired(), handler.Deactivate)
		employees.POST("/:id/activate", middleware.AdminRequired(), handler.Activate)
	}
}
