package leave

import (
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(jwtSecret))
	{
		leaves.POST("", middleware.Idempotency(rdb), handler.Apply)
		leaves.GET("/mine", handler.GetMine)
		leaves.GET("/balances", handler.GetMyBalances)

		leaves.GET("", middleware.AdminRequired(), handler.GetAll)
		leaves.GET("/:id", middleware.AdminRequired(), handler.GetById)
		leaves.POST("/:id/review", middleware.AdminRequired(), handler.Review)
		leaves.GET("/balances/:id", middleware.AdminRequired(), handler.GetBalancesById)
	}
}
