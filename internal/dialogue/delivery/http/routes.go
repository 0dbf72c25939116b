package http

import (
	"github.com/gin-gonic/gin"

	"appointment-assistant/internal/middleware"
)

// RegisterRoutes maps chat endpoints onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.POST("/reset", mw.RateLimit(), h.Reset)
	}
}
