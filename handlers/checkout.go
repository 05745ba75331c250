package handlers

import (
	"context"
	"net/http"

	"tripcheckout/models"
	"tripcheckout/services/checkout"
	"tripcheckout/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutService is implemented by *checkout.Service.
type CheckoutService interface {
	CreateHotelCheckout(ctx context.Context, fields checkout.Fields) (*models.CheckoutSession, error)
	CreateRideCheckout(ctx context.Context, fields checkout.Fields) (*models.CheckoutSession, error)
}

type CheckoutHandler struct {
	Svc    CheckoutService
	Logger *zap.Logger
}

func NewCheckoutHandler(svc CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc, Logger: logger}
}

// CreateCheckoutSession handles POST /api/create-checkout-session/.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	h.handle(c, h.Svc.CreateHotelCheckout)
}

// CreateRideCheckoutSession handles POST /api/create-ride-checkout-session/.
func (h *CheckoutHandler) CreateRideCheckoutSession(c *gin.Context) {
	h.handle(c, h.Svc.CreateRideCheckout)
}

type createFunc func(ctx context.Context, fields checkout.Fields) (*models.CheckoutSession, error)

func (h *CheckoutHandler) handle(c *gin.Context, create createFunc) {
	logger := getLogger(c, h.Logger)

	var fields checkout.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		logger.Warn("invalid checkout request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := create(c.Request.Context(), fields)
	if err != nil {
		ce := checkout.AsError(err)
		status := http.StatusBadRequest
		if !ce.ClientError() {
			status = http.StatusInternalServerError
		}
		logger.Error("checkout failed",
			zap.String("errorKind", string(ce.Kind)),
			zap.Int("status", status),
			zap.Error(err),
		)
		utils.JSONError(c, status, ce.Message)
		return
	}

	c.JSON(http.StatusOK, session)
}
