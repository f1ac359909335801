package routers

import (
	"net/http"

	"ripplenet-backend/internal/middleware"
	"ripplenet-backend/internal/routers/api"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	e := gin.New()
	e.HandleMethodNotAllowed = true
	e.Use(gin.Logger())
	e.Use(gin.Recovery())
	e.Use(middleware.Trace())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("X-Session-Token")
	e.Use(cors.New(corsConfig))

	// v1 group api
	r := e.Group("/v1")

	r.GET("/", api.Version)

	r.POST("/auth/register", api.Register)
	r.POST("/auth/login", api.Login)

	noAuthApi := r.Group("/")
	{
		noAuthApi.GET("/post", api.GetPost)

		noAuthApi.GET("/user/posts", api.GetUserPosts)

		noAuthApi.GET("/user/profile", api.GetUserProfile)

		noAuthApi.GET("/interests", api.GetInterests)

		noAuthApi.GET("/posts/search", api.SearchPosts)
	}

	authApi := r.Group("/").Use(middleware.Session())
	{
		authApi.DELETE("/auth/logout", api.Logout)

		authApi.GET("/user/info", api.GetUserInfo)

		authApi.POST("/user/nickname", api.ChangeNickname)

		authApi.POST("/user/avatar", api.ChangeAvatar)

		authApi.GET("/user/interests", api.GetUserInterests)

		authApi.POST("/user/interests", api.SetUserInterests)

		authApi.POST("/user/follow", api.FollowUser)

		authApi.DELETE("/user/follow", api.UnfollowUser)

		authApi.POST("/user/block", api.BlockUser)

		authApi.DELETE("/user/block", api.UnblockUser)

		authApi.POST("/user/mute", api.MuteUser)

		authApi.DELETE("/user/mute", api.UnmuteUser)

		authApi.GET("/feed/foryou", api.GetForYouFeed)

		authApi.GET("/feed/following", api.GetFollowingFeed)

		authApi.GET("/feed/explore", api.GetInterestFeed)

		authApi.POST("/post", api.CreatePost)

		authApi.DELETE("/post", api.DeletePost)

		authApi.POST("/post/summary", api.SetPostSummary)

		authApi.POST("/post/like", api.LikePost)

		authApi.DELETE("/post/like", api.UnlikePost)

		authApi.POST("/post/reshare", api.ResharePost)

		authApi.DELETE("/post/reshare", api.UnresharePost)
	}

	// default 404
	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code": 404,
			"msg":  "Not Found",
		})
	})

	// default 405
	e.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"code": 405,
			"msg":  "Method Not Allowed",
		})
	})

	return e
}
