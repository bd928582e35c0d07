package services

import (
	"context"
	"fmt"
	"strings"

	"sportsstore-service/models"
	"sportsstore-service/sender"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderEmailSubject = "New order submitted!"

type EmailSettings struct {
	MailTo   string
	MailFrom string
}

// EmailOrderProcessor mails a plain-text order summary to the store.
type EmailOrderProcessor struct {
	sender   sender.EmailSender
	settings EmailSettings
	logger   *zap.Logger
}

func NewEmailOrderProcessor(s sender.EmailSender, settings EmailSettings, logger *zap.Logger) *EmailOrderProcessor {
	return &EmailOrderProcessor{sender: s, settings: settings, logger: logger}
}

func (p *EmailOrderProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	res, err := p.sender.SendEmail(ctx, sender.Message{
		From:    p.settings.MailFrom,
		To:      p.settings.MailTo,
		Subject: orderEmailSubject,
		Body:    OrderEmailBody(cart, details),
	})
	if err != nil {
		return fmt.Errorf("send order email: %w", err)
	}
	p.logger.Info("Order email sent",
		zap.String("order_id", cart.CheckoutID),
		zap.String("message_id", res.MessageID),
	)
	return nil
}

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// OrderEmailBody renders the order summary mailed to the store.
func OrderEmailBody(cart *models.Cart, details models.ShippingDetails) string {
	var b strings.Builder
	b.WriteString("A new order has been submitted\n")
	b.WriteString("---\n")
	b.WriteString("Items:\n")
	for _, l := range cart.Lines {
		fmt.Fprintf(&b, "%d x %s (subtotal: %s)\n", l.Quantity, l.Product.Name, formatMoney(l.Subtotal()))
	}
	fmt.Fprintf(&b, "Total order value: %s\n", formatMoney(cart.ComputeTotalValue()))
	b.WriteString("---\n")
	b.WriteString("Ship to:\n")
	for _, line := range []string{details.Name, details.Line1, details.Line2, details.Line3, details.City, details.State, details.Country, details.Zip} {
		if line != "" {
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("---\n")
	giftWrap := "No"
	if details.GiftWrap {
		giftWrap = "Yes"
	}
	fmt.Fprintf(&b, "Gift wrap: %s", giftWrap)
	return b.String()
}
