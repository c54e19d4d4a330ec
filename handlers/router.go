package handlers

import (
	"net/http"

	"article-review-cms/helper"
	"article-review-cms/middleware"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires every route of the API. /metrics is only mounted when a
// registry is given.
func NewRouter(svc services.Services, httpHelper *helper.HTTPHelper, logger *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	authHandler := NewAuthHandler(svc.Auth, httpHelper)
	userHandler := NewUserHandler(svc.Users, httpHelper)
	articleHandler := NewArticleHandler(svc.Articles, httpHelper)
	changeHandler := NewChangeHandler(svc.Changes, httpHelper)
	reviewHandler := NewReviewHandler(svc.Reviews, httpHelper)

	requestMiddleware := middleware.NewRequestMiddleware(logger)
	authMiddleware := middleware.NewAuthMiddleware(svc.Auth, httpHelper, logger)

	router := gin.New()
	router.Use(requestMiddleware.RecoverPanic())
	router.Use(requestMiddleware.ProcessRequest())
	router.Use(middleware.CORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	requireAuth := authMiddleware.RequireAuth()

	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Articles are readable without a token
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.POST("", requireAuth, articleHandler.CreateArticle)
			articles.PUT("/:id", requireAuth, articleHandler.UpdateArticle)
			articles.DELETE("/:id", requireAuth, articleHandler.DeleteArticle)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(requireAuth)
		{
			protected.GET("/profile", authHandler.GetProfile)

			users := protected.Group("/users")
			{
				users.GET("/:id", userHandler.GetUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
				users.PUT("/:id/status", userHandler.ChangeStatus)
			}

			changes := protected.Group("/changes")
			{
				changes.POST("", changeHandler.CreateChange)
				changes.GET("/:id", changeHandler.GetChange)
				changes.DELETE("/:id", changeHandler.DeleteChange)
			}
			protected.GET("/review-queue", changeHandler.GetChangesInReview)

			reviews := protected.Group("/reviews")
			{
				reviews.POST("", reviewHandler.SubmitReview)
				reviews.GET("/:change_id", reviewHandler.GetReview)
				reviews.PUT("/:change_id", reviewHandler.UpdateReview)
			}

			me := protected.Group("/me")
			{
				me.GET("/changes", changeHandler.GetMyChanges)
				me.GET("/reviews", reviewHandler.GetMyReviews)
				me.GET("/changes/reviews", reviewHandler.GetMyChangesReviewed)
			}
		}
	}

	return router
}
