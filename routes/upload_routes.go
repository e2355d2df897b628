package routes

import (
	"rentwheels/internal/handlers"
	"rentwheels/internal/middleware"
	"rentwheels/internal/utils"

	"github.com/gin-gonic/gin"
)

// SetupUploadRoutes sets up the image upload endpoints on the API group
func SetupUploadRoutes(r *gin.RouterGroup, uploadHandler *handlers.UploadHandler) {
	r.POST("/upload", uploadHandler.UploadImage)
	r.POST("/upload-multiple", uploadHandler.UploadImages)
}

// SetupFileRoutes serves stored uploads on the router root, outside the API
// CORS policy. OPTIONS is answered by the headers middleware.
func SetupFileRoutes(router *gin.Engine, uploadHandler *handlers.UploadHandler) {
	files := router.Group(utils.UploadURLPrefix)
	files.Use(middleware.UploadHeaders())
	{
		files.GET("/:filename", uploadHandler.ServeImage)
		files.HEAD("/:filename", uploadHandler.ServeImage)
		files.OPTIONS("/:filename", uploadHandler.ServeImage)
	}
}
