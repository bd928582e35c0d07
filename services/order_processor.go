package services

import (
	"context"
	"errors"
	"fmt"

	"sportsstore-service/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// OrderProcessor finalizes a submitted order. The checkout does not retry or
// translate its failures.
type OrderProcessor interface {
	ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error
}

// NamedOrderProcessor labels a processor for logging.
type NamedOrderProcessor struct {
	Name      string
	Processor OrderProcessor
}

// FanOutOrderProcessor runs every configured processor concurrently on the
// caller's context. A failing processor does not stop its siblings; all
// failures are joined into the returned error. The cart is only read while
// they run.
type FanOutOrderProcessor struct {
	processors []NamedOrderProcessor
	logger     *zap.Logger
}

func NewFanOutOrderProcessor(logger *zap.Logger, processors ...NamedOrderProcessor) *FanOutOrderProcessor {
	return &FanOutOrderProcessor{processors: processors, logger: logger}
}

func (f *FanOutOrderProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	var g errgroup.Group
	errs := make([]error, len(f.processors))
	for i, np := range f.processors {
		i, np := i, np
		g.Go(func() error {
			if err := np.Processor.ProcessOrder(ctx, cart, details); err != nil {
				f.logger.Error("Order processor failed",
					zap.String("processor", np.Name),
					zap.String("order_id", cart.CheckoutID),
					zap.Error(err),
				)
				errs[i] = fmt.Errorf("%s: %w", np.Name, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
