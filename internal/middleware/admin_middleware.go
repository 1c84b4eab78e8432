package middleware

import (
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/apperror"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AdminRequired menjaga endpoint khusus admin. Dipasang setelah AuthMiddleware,
// karena membaca flag is_admin yang sudah divalidasi dari token.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			errObj := apperror.ErrForbidden
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
