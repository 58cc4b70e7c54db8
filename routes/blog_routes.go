package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/builditdreamz/builditdreamz_backend/controllers"
)

func RegisterBlogRoutes(e *echo.Echo, blogController *controllers.BlogController) {
	blog := e.Group("/api/blog")
	blog.GET("", blogController.GetPosts)
	blog.POST("", blogController.CreatePost)
}
