package routes

import (
	"net/http"

	"serviciosjt/internal/adapter/http/handlers"
	"serviciosjt/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	auth *middleware.Authenticator,
	proposalHandler *handlers.ProposalHandler,
	reviewHandler *handlers.ReviewHandler,
	publicationHandler *handlers.PublicationHandler,
	userHandler *handlers.UserHandler,
	imageHandler *handlers.ImageHandler,
) {
	// Publications: the feed and single listings are public (the feed
	// narrows per role when a token is present), mutations require auth.
	publications := rg.Group("/publications")
	{
		publications.GET("", auth.OptionalAuth(), publicationHandler.ListPublications)
		publications.GET("/mine", auth.RequireAuth(), publicationHandler.ListMyPublications)
		publications.GET("/:id", publicationHandler.GetPublication)
		publications.POST("", auth.RequireAuth(), publicationHandler.CreatePublication)
		publications.DELETE("/:id", auth.RequireAuth(), publicationHandler.DeletePublication)
		publications.GET("/:id/proposals", auth.RequireAuth(), proposalHandler.ListByPublication)
	}

	// Proposals: party-only, everything requires auth.
	proposals := rg.Group("/proposals", auth.RequireAuth())
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListMyProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id/accept", proposalHandler.AcceptProposal)
		proposals.PATCH("/:id/reject", proposalHandler.RejectProposal)
		proposals.PATCH("/:id/cancel", proposalHandler.CancelProposal)
		proposals.GET("/:id/can-review", reviewHandler.CanReview)
	}

	// Reviews: submission is party-only; reading a user's reviews and
	// rating aggregate is public.
	reviews := rg.Group("/reviews")
	{
		reviews.POST("", auth.RequireAuth(), reviewHandler.SubmitReview)
		reviews.GET("/mine", auth.RequireAuth(), reviewHandler.ListMyReviews)
		reviews.GET("/:id", reviewHandler.GetReview)
	}

	users := rg.Group("/users")
	{
		users.GET("/me", auth.RequireAuth(), userHandler.GetMe)
		users.POST("/me/onboarding", auth.RequireAuth(), userHandler.CompleteOnboarding)
		users.PATCH("/me", auth.RequireAuth(), userHandler.UpdateProfile)
		users.GET("/:id", userHandler.GetUser)
		users.GET("/:id/reviews", reviewHandler.ListUserReviews)
		users.GET("/:id/rating", reviewHandler.GetUserRating)
	}

	rg.GET("/technicians", userHandler.ListTechnicians)
	rg.GET("/technicians/:id", userHandler.GetUser)

	rg.POST("/images", auth.RequireAuth(), imageHandler.UploadImage)
}
