package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageNotFound отдает 404 с запрошенным путем для диагностики
func PageNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "page not found",
		"path":  c.Request.URL.Path,
	})
}

// ServerError отдает генерический ответ о внутренней ошибке
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// Recovery превращает панику обработчика в 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		ServerError(c)
		c.Abort()
	})
}
