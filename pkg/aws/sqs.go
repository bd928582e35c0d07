package aws

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSSender sends messages to a single queue.
type SQSSender interface {
	SendMessage(ctx context.Context, body string, attributes map[string]string) error
}

type SQSClient struct {
	client   *sqs.Client
	queueURL string
}

func NewSQSClient(cfg sdkaws.Config, queueURL string) *SQSClient {
	return &SQSClient{client: sqs.NewFromConfig(cfg), queueURL: queueURL}
}

// SendMessage sends one message with optional string attributes.
func (c *SQSClient) SendMessage(ctx context.Context, body string, attributes map[string]string) error {
	input := &sqs.SendMessageInput{
		QueueUrl:    sdkaws.String(c.queueURL),
		MessageBody: sdkaws.String(body),
	}
	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for k, v := range attributes {
			input.MessageAttributes[k] = types.MessageAttributeValue{
				DataType:    sdkaws.String("String"),
				StringValue: sdkaws.String(v),
			}
		}
	}
	if _, err := c.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// GetQueueURL resolves a queue name to its URL.
func GetQueueURL(ctx context.Context, cfg sdkaws.Config, queueName string) (string, error) {
	out, err := sqs.NewFromConfig(cfg).GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: &queueName})
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL: %w", err)
	}
	return sdkaws.ToString(out.QueueUrl), nil
}
