package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mooza/config"
	"mooza/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/facets", h.getFacets)
			catalog.GET("/:facet/options", h.getFacetOptions)
		}

		search := api.Group("/search")
		search.Use(h.authMiddleware())
		{
			search.GET("/", h.search)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/me", h.updateCurrentUser)
			users.PUT("/me/password", h.updatePassword)
			users.POST("/me/avatar", h.uploadAvatar)
			users.DELETE("/me/avatar", h.deleteAvatar)
			users.GET("/:id/posts", h.getUserPosts)
			users.GET("/:id/profile", h.getProfileByUserID)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		profiles := api.Group("/profiles")
		profiles.Use(h.authMiddleware())
		{
			profiles.GET("/me", h.getMyProfile)
			profiles.PUT("/me", h.upsertMyProfile)
			profiles.DELETE("/me", h.deleteMyProfile)
		}

		friends := api.Group("/friends")
		friends.Use(h.authMiddleware())
		{
			friends.GET("/", h.getFriends)
			friends.GET("/requests", h.getFriendRequests)
			friends.POST("/requests", h.sendFriendRequest)
			friends.POST("/requests/:id/accept", h.acceptFriendRequest)
			friends.POST("/requests/:id/decline", h.declineFriendRequest)
			friends.DELETE("/:id", h.removeFriend)
		}

		posts := api.Group("/posts")
		posts.Use(h.authMiddleware())
		{
			posts.POST("/", h.createPost)
			posts.GET("/feed", h.getFeed)
			posts.GET("/:id", h.getPostByID)
			posts.PUT("/:id", h.updatePost)
			posts.DELETE("/:id", h.deletePost)

			posts.POST("/:id/like", h.likePost)
			posts.DELETE("/:id/like", h.unlikePost)

			posts.GET("/:id/comments", h.getPostComments)
			posts.POST("/:id/comments", h.addPostComment)
			posts.DELETE("/comments/:commentId", h.deletePostComment)
		}

		messages := api.Group("/messages")
		messages.Use(h.authMiddleware())
		{
			messages.POST("/", h.sendMessage)
			messages.GET("/dialogs", h.getDialogs)
			messages.GET("/unread-count", h.getUnreadCount)
			messages.GET("/with/:peerId", h.getMessageHistory)
			messages.POST("/with/:peerId/read", h.markMessagesRead)
		}
	}
}
