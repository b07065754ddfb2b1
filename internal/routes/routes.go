package routes

import (
	"github.com/gin-gonic/gin"

	"reviewboard/internal/handlers"
)

// RegisterRoutes registers all HTTP routes on the engine root. Paths are the
// public contract: /user/create, /user/token, /user/me, /review/reviews.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.UserHandler.RegisterRoutes(root)
		appHandlers.ReviewHandler.RegisterRoutes(root)
	}
}
