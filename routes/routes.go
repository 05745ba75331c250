package routes

import (
	"time"

	"tripcheckout/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCheckoutRoutes registers the payment endpoints. Both the slashed
// and unslashed paths are served so POST bodies are never redirected.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/create-checkout-session/", hb.CreateCheckoutSession)
		api.POST("/create-checkout-session", hb.CreateCheckoutSession)
		api.POST("/create-ride-checkout-session/", hb.CreateRideCheckoutSession)
		api.POST("/create-ride-checkout-session", hb.CreateRideCheckoutSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterMetricsRoute exposes the Prometheus scrape endpoint when a
// handler is configured.
func RegisterMetricsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Metrics != nil {
		r.GET("/metrics", hb.Metrics)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	RegisterCheckoutRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterMetricsRoute(r, hb)
}
