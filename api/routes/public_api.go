package routes

import (
	"net/http"
	"yatube/api/handlers"
	"yatube/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PublicApi регистрирует все маршруты приложения.
// Порядок важен: статические пути идут до параметра :username.
func PublicApi(router *gin.Engine) {
	router.NoRoute(handlers.PageNotFound)

	router.GET("/", middleware.OptionalAuth(), handlers.Index)
	router.GET("/group/", handlers.GroupList)
	router.GET("/group/:slug/", handlers.GroupPosts)

	router.GET("/new/", middleware.AuthRequired(), handlers.NewPost)
	router.POST("/new/", middleware.AuthRequired(), handlers.NewPost)

	router.GET("/follow/", middleware.AuthRequired(), handlers.FollowIndex)
	router.GET("/ws/feed", middleware.AuthRequired(), handlers.WSFeed)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/signup/", handlers.Signup)
		auth.POST("/login/", handlers.Login)
		auth.POST("/logout/", middleware.AuthRequired(), handlers.Logout)
		// Сюда редиректятся неавторизованные запросы к закрытым страницам
		auth.GET("/login/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"form": gin.H{"username": "", "password": ""}})
		})
	}

	router.GET("/:username/", middleware.OptionalAuth(), handlers.Profile)
	router.GET("/:username/follow/", middleware.AuthRequired(), handlers.ProfileFollow)
	router.GET("/:username/unfollow/", middleware.AuthRequired(), handlers.ProfileUnfollow)
	router.GET("/:username/:post_id/", handlers.PostView)
	router.GET("/:username/:post_id/edit/", middleware.AuthRequired(), handlers.PostEdit)
	router.POST("/:username/:post_id/edit/", middleware.AuthRequired(), handlers.PostEdit)
	router.POST("/:username/:post_id/comment", middleware.AuthRequired(), handlers.AddComment)
}
