package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Checkout endpoints
	CreateCheckoutSession     gin.HandlerFunc
	CreateRideCheckoutSession gin.HandlerFunc

	Health  gin.HandlerFunc
	Metrics gin.HandlerFunc
}
