package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/middleware"
)

// Services bundles everything the route layer depends on.
type Services struct {
	Tokens   core.TokenService
	Users    core.UserService
	Products core.ProductService
	Ranking  core.RankingService
	Votes    core.VoteService
	Reviews  core.ReviewService
	Reports  core.ReportService
	Coupons  core.CouponService
	Stats    core.StatsService
	Sliders  core.SliderService
	Billing  core.BillingService
}

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS) is applied to the router before this is
// called, in main.
func SetupRoutes(router *gin.Engine, logger *zap.Logger, svc Services) {
	authMW := middleware.NewAuthMiddleware(svc.Tokens, svc.Users)

	authHandler := NewAuthHandler(svc.Tokens)
	userHandler := NewUserHandler(svc.Users)
	productHandler := NewProductHandler(svc.Products, svc.Ranking)
	voteHandler := NewVoteHandler(svc.Votes)
	reviewHandler := NewReviewHandler(svc.Reviews)
	reportHandler := NewReportHandler(svc.Reports)
	couponHandler := NewCouponHandler(svc.Coupons)
	statsHandler := NewStatsHandler(svc.Stats)
	sliderHandler := NewSliderHandler(svc.Sliders)
	billingHandler := NewBillingHandler(svc.Billing)

	apiV1 := router.Group("/api/v1")
	{
		// Public endpoints.
		apiV1.POST("/jwt", authHandler.IssueToken)
		apiV1.POST("/users", userHandler.Register)
		apiV1.GET("/reviews", reviewHandler.ListByProduct)
		apiV1.GET("/coupons/validate", couponHandler.Validate)
		apiV1.GET("/coupons/active", couponHandler.Active)
		apiV1.GET("/sliders", sliderHandler.List)
		apiV1.GET("/votes/tally", voteHandler.Tally)

		products := apiV1.Group("/products")
		{
			products.GET("", productHandler.ListAccepted)
			products.GET("/count", productHandler.CountAccepted)
			products.GET("/trending", productHandler.Trending)
			products.GET("/featured", productHandler.Featured)

			products.GET("/mine", authMW.VerifyToken(), productHandler.Mine)
			products.POST("", authMW.VerifyToken(), productHandler.Submit)

			moderated := products.Group("", authMW.VerifyToken(), authMW.RequireModerator())
			{
				moderated.GET("/queue", productHandler.Queue)
				moderated.GET("/reported", productHandler.Reported)
				moderated.PATCH("/:id/status", productHandler.SetStatus)
				moderated.PATCH("/:id/featured", productHandler.SetFeatured)
				moderated.PATCH("/:id/reported", productHandler.MarkReported)
				moderated.DELETE("/:id", productHandler.Delete)
			}

			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", authMW.VerifyToken(), productHandler.Update)
		}

		authed := apiV1.Group("", authMW.VerifyToken())
		{
			authed.GET("/users/me", userHandler.Me)
			authed.POST("/votes", voteHandler.Append)
			authed.PUT("/votes", voteHandler.Upsert)
			authed.POST("/reviews", reviewHandler.Submit)
			authed.POST("/reports", reportHandler.Submit)
			authed.GET("/stats/mine", statsHandler.Mine)
			authed.POST("/payments", billingHandler.RecordPayment)
			authed.POST("/billing/create-payment-intent", billingHandler.CreatePaymentIntent)
		}

		moderator := apiV1.Group("", authMW.VerifyToken(), authMW.RequireModerator())
		{
			moderator.GET("/reports", reportHandler.List)
		}

		admin := apiV1.Group("", authMW.VerifyToken(), authMW.RequireAdmin())
		{
			admin.GET("/users", userHandler.List)
			admin.PATCH("/users/:email/role", userHandler.UpdateRole)
			admin.GET("/stats", statsHandler.Site)
			admin.GET("/coupons", couponHandler.List)
			admin.POST("/coupons", couponHandler.Create)
			admin.PUT("/coupons/:id", couponHandler.Update)
			admin.DELETE("/coupons/:id", couponHandler.Delete)
			admin.POST("/sliders", sliderHandler.Create)
			admin.DELETE("/sliders/:id", sliderHandler.Delete)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "ProductPulse server is running..."})
	})

	logger.Info("API routes configured", zap.String("base", "/api/v1"))
}
