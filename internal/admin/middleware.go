package admin

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка админ-доступа по заголовку X-Admin-Key.
// Ключ берётся из переменной окружения ADMIN_KEY; если она не задана,
// доступ открыт (локальный запуск).
func AuthMiddleware() gin.HandlerFunc {
	adminKey := os.Getenv("ADMIN_KEY")

	return func(c *gin.Context) {
		if adminKey != "" && c.GetHeader("X-Admin-Key") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
