package services

import (
	"context"

	"sportsstore-service/models"
	aws_pkg "sportsstore-service/pkg/aws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const emptyCartMessage = "Sorry, your cart is empty!"

// CheckoutService turns a cart plus shipping details into a submitted order.
type CheckoutService interface {
	Checkout(ctx context.Context, cart *models.Cart, details models.ShippingDetails) models.CheckoutResult
}

type checkoutServiceImpl struct {
	processor OrderProcessor
	metrics   aws_pkg.MetricsRecorder
	logger    *zap.Logger
}

func NewCheckoutService(processor OrderProcessor, metrics aws_pkg.MetricsRecorder, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{processor: processor, metrics: metrics, logger: logger}
}

// Checkout validates details and the cart, hands the order to the processor
// and clears the cart. An invalid request leaves the cart untouched and never
// reaches the processor. A processor failure is logged; the cart is still
// cleared and the outcome is still completed.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, cart *models.Cart, details models.ShippingDetails) models.CheckoutResult {
	validation := details.Validate()
	if cart == nil || cart.IsEmpty() {
		validation.Add("cart", emptyCartMessage)
	}
	if !validation.Valid() {
		return models.CheckoutResult{Status: models.CheckoutInvalid, Validation: validation}
	}

	if cart.CheckoutID == "" {
		cart.CheckoutID = uuid.NewString()
	}
	orderID := cart.CheckoutID
	total := cart.ComputeTotalValue()
	dims := map[string]string{"Service": "sportsstore"}

	recordCount(s.metrics, aws_pkg.MetricCartCheckouts, dims)
	if err := s.processor.ProcessOrder(ctx, cart, details); err != nil {
		s.logger.Error("Order processing failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		recordCount(s.metrics, aws_pkg.MetricOrdersFailed, dims)
	} else {
		s.logger.Info("Order processed",
			zap.String("order_id", orderID),
			zap.Int("items", cart.ItemCount()),
			zap.String("total", total.String()),
		)
		recordCount(s.metrics, aws_pkg.MetricOrdersCreated, dims)
		recordValue(s.metrics, aws_pkg.MetricOrderValue, total.InexactFloat64(), dims)
	}

	cart.Clear()
	return models.CheckoutResult{Status: models.CheckoutCompleted, OrderID: orderID, Validation: validation}
}
