package services

import (
	"context"
	"fmt"
	"strings"

	"sportsstore-service/models"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"go.uber.org/zap"
)

// PaymentIntentCreator creates a Stripe PaymentIntent.
type PaymentIntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// StripeOrderProcessor opens a PaymentIntent for the cart total so payment can
// be collected against the order id.
type StripeOrderProcessor struct {
	create   PaymentIntentCreator
	currency string
	logger   *zap.Logger
}

func NewStripeOrderProcessor(secretKey, currency string, logger *zap.Logger) *StripeOrderProcessor {
	stripe.Key = secretKey
	return NewStripeOrderProcessorWithCreator(paymentintent.New, currency, logger)
}

func NewStripeOrderProcessorWithCreator(create PaymentIntentCreator, currency string, logger *zap.Logger) *StripeOrderProcessor {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripeOrderProcessor{create: create, currency: strings.ToLower(currency), logger: logger}
}

// minorUnits converts an amount to cents, rounding half away from zero.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (p *StripeOrderProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	amount := minorUnits(cart.ComputeTotalValue())
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(p.currency),
		Description: stripe.String(fmt.Sprintf("SportsStore order %s", cart.CheckoutID)),
	}
	params.AddMetadata("order_id", cart.CheckoutID)
	params.AddMetadata("ship_to", details.Name)

	pi, err := p.create(params)
	if err != nil {
		return fmt.Errorf("create payment intent: %w", err)
	}
	p.logger.Info("Payment intent created",
		zap.String("order_id", cart.CheckoutID),
		zap.String("payment_intent", pi.ID),
		zap.Int64("amount", amount),
	)
	return nil
}
