package http

import (
	"github.com/faithbliss/backend/internal/delivery/http/handler"
	"github.com/faithbliss/backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	discoverHandler  *handler.DiscoverHandler
	matchHandler     *handler.MatchHandler
	messageHandler   *handler.MessageHandler
	communityHandler *handler.CommunityHandler
	wsHandler        *handler.WSHandler
	authMiddleware   *middleware.AuthMiddleware
	uploadsDir       string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	discoverHandler *handler.DiscoverHandler,
	matchHandler *handler.MatchHandler,
	messageHandler *handler.MessageHandler,
	communityHandler *handler.CommunityHandler,
	wsHandler *handler.WSHandler,
	authMiddleware *middleware.AuthMiddleware,
	uploadsDir string,
) *Router {
	return &Router{
		authHandler:      authHandler,
		userHandler:      userHandler,
		discoverHandler:  discoverHandler,
		matchHandler:     matchHandler,
		messageHandler:   messageHandler,
		communityHandler: communityHandler,
		wsHandler:        wsHandler,
		authMiddleware:   authMiddleware,
		uploadsDir:       uploadsDir,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Uploaded profile photos are stored on disk and served by ref.
	router.Static("/uploads", r.uploadsDir)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// User routes
			users := protected.Group("/users")
			{
				users.GET("/me", r.userHandler.GetMe)
				users.PUT("/me", r.userHandler.UpdateMe)
				users.POST("/me/complete-onboarding", r.userHandler.CompleteOnboarding)
				users.GET("/me/preferences", r.userHandler.GetPreferences)
				users.PUT("/me/preferences", r.userHandler.UpdatePreferences)
				users.POST("/me/photos", r.userHandler.UploadPhoto)
				users.DELETE("/me/photos/:slot", r.userHandler.DeletePhoto)
				users.POST("/me/deactivate", r.userHandler.Deactivate)
				users.GET("/:user_id", r.userHandler.GetUser)
			}

			// Discovery routes
			disc := protected.Group("/discover")
			{
				disc.GET("", r.discoverHandler.GetCandidates)
				disc.POST("/search", r.discoverHandler.Search)
				disc.GET("/interest/:interest", r.discoverHandler.ByInterest)
				disc.GET("/verse/:verse", r.discoverHandler.ByVerse)
				disc.GET("/active", r.discoverHandler.ActiveUsers)
				disc.GET("/stats", r.discoverHandler.GetStats)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.List)
				matches.POST("/like", r.matchHandler.Like)
				matches.POST("/pass", r.matchHandler.Pass)
				matches.GET("/likes-received", r.matchHandler.LikesReceived)
				matches.POST("/:match_id/messages", r.messageHandler.Send)
				matches.GET("/:match_id/messages", r.messageHandler.History)
			}

			// Message routes
			protected.POST("/messages/:message_id/read", r.messageHandler.MarkRead)
			protected.GET("/messages/unread-count", r.messageHandler.UnreadCount)
			protected.GET("/conversations", r.messageHandler.Conversations)

			// Community routes
			comm := protected.Group("/community")
			{
				comm.POST("/posts", r.communityHandler.CreatePost)
				comm.GET("/posts", r.communityHandler.ListPosts)
				comm.POST("/posts/:post_id/like", r.communityHandler.LikePost)
				comm.DELETE("/posts/:post_id/like", r.communityHandler.UnlikePost)
				comm.POST("/posts/:post_id/comments", r.communityHandler.CommentOnPost)
				comm.POST("/events", r.communityHandler.CreateEvent)
				comm.GET("/events", r.communityHandler.ListEvents)
				comm.POST("/events/:event_id/join", r.communityHandler.JoinEvent)
				comm.POST("/events/:event_id/leave", r.communityHandler.LeaveEvent)
				comm.POST("/prayer-requests", r.communityHandler.CreatePrayerRequest)
				comm.GET("/prayer-requests", r.communityHandler.ListPrayerRequests)
				comm.POST("/prayer-requests/:request_id/pray", r.communityHandler.Pray)
				comm.POST("/bless-wall", r.communityHandler.CreateBlessWallEntry)
				comm.GET("/bless-wall", r.communityHandler.ListBlessWall)
			}

			// Live events
			protected.GET("/ws", r.wsHandler.Connect)
		}
	}

	return router
}
