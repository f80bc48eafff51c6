package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"agency-platform.backend/internal/domain/entities"
	"agency-platform.backend/internal/interfaces/http/handlers"
	"agency-platform.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	discoveryHandler    *handlers.DiscoveryHandler
	profileHandler      *handlers.ProfileHandler
	agencyHandler       *handlers.AgencyHandler
	verificationHandler *handlers.VerificationHandler
	pointsHandler       *handlers.PointsHandler
	membershipHandler   *handlers.MembershipHandler
	registrationHandler *handlers.RegistrationHandler
	webhookHandler      *handlers.WebhookHandler
	authMiddleware      gin.HandlerFunc
	optionalAuth        gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "agency-platform-backend",
			"version": "0.1.0",
		})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
		}

		// Discovery routes (public, optional auth for visitor attribution)
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", d.discoveryHandler.ListProfiles)
			profiles.GET("/:id", d.optionalAuth, d.discoveryHandler.GetProfile)
			profiles.POST("/:id/contacts", d.optionalAuth, d.discoveryHandler.RecordContact)
		}

		// Profile-owner routes (protected)
		profilesAuth := v1.Group("/profiles")
		profilesAuth.Use(d.authMiddleware)
		{
			profilesAuth.POST("", d.profileHandler.CreateProfile)
			profilesAuth.PATCH("/:id/availability", d.profileHandler.SetAvailability)
			profilesAuth.GET("/:id/stats", d.profileHandler.GetStats)
			profilesAuth.DELETE("/:id/verification", d.verificationHandler.RevokeVerification)
		}

		me := v1.Group("/me")
		me.Use(d.authMiddleware)
		{
			me.GET("/profile", d.profileHandler.GetOwnProfile)
		}

		// Public agency view
		v1.GET("/agencies/:id", d.agencyHandler.GetAgency)

		// Agency management routes (protected)
		agencies := v1.Group("/agencies")
		agencies.Use(d.authMiddleware)
		{
			agencies.GET("/:id/profiles", d.agencyHandler.GetProfiles)
			agencies.DELETE("/:id/profiles/:profileId", d.agencyHandler.RemoveProfile)
			agencies.GET("/:id/dashboard", d.agencyHandler.GetDashboard)
			agencies.POST("/:id/placements", d.agencyHandler.CreatePlacement)
			agencies.GET("/:id/placements", d.agencyHandler.GetPlacements)

			agencies.POST("/:id/profiles/:profileId/verify", d.verificationHandler.VerifyProfile)
			agencies.POST("/:id/verifications/batch", d.verificationHandler.VerifyBatch)
			agencies.GET("/:id/commissions", d.verificationHandler.GetCommissions)

			agencies.GET("/:id/points", d.pointsHandler.GetBalance)
			agencies.POST("/:id/points/credit", d.pointsHandler.Credit)
			agencies.POST("/:id/points/debit", d.pointsHandler.Debit)

			agencies.GET("/:id/membership-requests", d.membershipHandler.GetHistory)
			agencies.GET("/:id/membership-requests/pending", d.membershipHandler.GetPending)
		}

		// Membership request lifecycle (protected)
		membershipRequests := v1.Group("/membership-requests")
		membershipRequests.Use(d.authMiddleware)
		{
			membershipRequests.POST("", d.membershipHandler.Submit)
			membershipRequests.POST("/:id/approve", d.membershipHandler.Approve)
			membershipRequests.POST("/:id/reject", d.membershipHandler.Reject)
			membershipRequests.POST("/:id/cancel", d.membershipHandler.Cancel)
		}

		// Agency sign-up (public)
		v1.POST("/agency-registrations", d.registrationHandler.Submit)

		// Payment provider webhooks (internal)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/payments", d.webhookHandler.HandlePaymentWebhook)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(entities.UserRoleAdmin))
		{
			admin.GET("/agencies", d.agencyHandler.ListAgencies)
			admin.PATCH("/agencies/:id/verification", d.verificationHandler.SetAgencyVerified)

			admin.GET("/agency-registrations/pending", d.registrationHandler.ListPending)
			admin.POST("/agency-registrations/:id/approve", d.registrationHandler.Approve)
			admin.POST("/agency-registrations/:id/reject", d.registrationHandler.Reject)
		}
	}
}
