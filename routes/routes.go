package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cruise-backend/controllers"
	"cruise-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public booking surface and the operator
// endpoints.
func SetupRouter(
	rc *controllers.ReservationController,
	ac *controllers.AvailabilityController,
	lc *controllers.LodgingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Token", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		reservations := api.Group("/reservations")
		{
			reservations.POST("", rc.CreateReservation)
			reservations.GET("/quote", rc.GetQuote)
		}

		api.GET("/pricing", rc.GetPricing)
		api.GET("/availability", ac.CheckAvailability)

		lodgings := api.Group("/lodgings")
		{
			lodgings.GET("", lc.GetLodgings)
			lodgings.GET("/:id", lc.GetLodgingByID)
		}

		api.GET("/settings/site", controllers.GetSiteSettings)

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/reservations", controllers.GetReservations)
			admin.GET("/reservations/:id", controllers.GetReservationByID)
			admin.PATCH("/reservations/:id/status", controllers.UpdateReservationStatus)
			admin.PATCH("/reservations/:id/deposit", controllers.UpdateReservationDeposit)
			admin.DELETE("/reservations/:id", controllers.DeleteReservation)

			admin.GET("/availability", controllers.GetAvailabilities)
			admin.PUT("/availability", ac.UpsertAvailability)
			admin.DELETE("/availability/:id", controllers.DeleteAvailability)

			admin.PUT("/settings/site", controllers.UpdateSiteSettings)
		}
	}

	return r
}
