package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	aws_pkg "sportsstore-service/pkg/aws"
	"sportsstore-service/sender"
	"sportsstore-service/services"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"
)

// buildOrderProcessor assembles the processors named in ORDER_PROCESSORS. The
// returned closers must be closed on shutdown. ORDER_SQS_QUEUE_URL may also be
// a bare queue name.
func buildOrderProcessor(ctx context.Context, cfg *Config, awsCfg sdkaws.Config, logger *zap.Logger) (services.OrderProcessor, []io.Closer, error) {
	var named []services.NamedOrderProcessor
	var closers []io.Closer

	for _, name := range cfg.OrderProcessors {
		var p services.OrderProcessor
		switch name {
		case "email":
			s, err := newEmailSender(cfg)
			if err != nil {
				return nil, closers, err
			}
			p = services.NewEmailOrderProcessor(s, services.EmailSettings{MailTo: cfg.MailTo, MailFrom: cfg.MailFrom}, logger)
		case "sns":
			p = services.NewSNSOrderProcessor(aws_pkg.NewSNSClient(awsCfg), cfg.OrderSNSTopicArn, logger)
		case "sqs":
			queueURL := cfg.OrderSQSQueueURL
			if !strings.HasPrefix(queueURL, "http") {
				resolved, err := aws_pkg.GetQueueURL(ctx, awsCfg, queueURL)
				if err != nil {
					return nil, closers, err
				}
				queueURL = resolved
			}
			p = services.NewSQSOrderProcessor(aws_pkg.NewSQSClient(awsCfg, queueURL), logger)
		case "kafka":
			w := services.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaOrderTopic)
			closers = append(closers, w)
			p = services.NewKafkaOrderProcessor(w, logger)
		case "stripe":
			p = services.NewStripeOrderProcessor(cfg.StripeSecretKey, cfg.StripeCurrency, logger)
		default:
			return nil, closers, fmt.Errorf("unknown order processor %q", name)
		}
		named = append(named, services.NamedOrderProcessor{Name: name, Processor: p})
		logger.Info("Order processor enabled", zap.String("processor", name))
	}

	if len(named) == 1 {
		return named[0].Processor, closers, nil
	}
	return services.NewFanOutOrderProcessor(logger, named...), closers, nil
}

func newEmailSender(cfg *Config) (sender.EmailSender, error) {
	if cfg.MailWriteAsFile {
		return sender.NewFileSender(cfg.MailFileLocation)
	}
	return sender.NewSMTPSender(sender.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
	})
}
