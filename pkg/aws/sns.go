package aws

import (
	"context"
	"fmt"
	"strings"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Event is a domain event published to a topic. Type and Key travel as
// message attributes so subscribers can filter without decoding Payload.
type Event struct {
	Type    string
	Key     string
	Payload []byte
}

// EventPublisher publishes domain events to SNS topics.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topicArn string, ev Event) error
}

type snsAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SNSClient struct {
	api snsAPI
}

func NewSNSClient(cfg sdkaws.Config) *SNSClient {
	return &SNSClient{api: sns.NewFromConfig(cfg)}
}

func stringAttr(v string) types.MessageAttributeValue {
	return types.MessageAttributeValue{DataType: sdkaws.String("String"), StringValue: sdkaws.String(v)}
}

// PublishEvent sends ev to topicArn. FIFO topics are grouped and deduplicated
// by ev.Key, so events for one key arrive in order exactly once.
func (s *SNSClient) PublishEvent(ctx context.Context, topicArn string, ev Event) error {
	if topicArn == "" {
		return fmt.Errorf("empty topicArn")
	}
	if ev.Type == "" {
		return fmt.Errorf("event has no type")
	}

	in := &sns.PublishInput{
		TopicArn: sdkaws.String(topicArn),
		Message:  sdkaws.String(string(ev.Payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": stringAttr(ev.Type),
		},
	}
	if ev.Key != "" {
		in.MessageAttributes["event_key"] = stringAttr(ev.Key)
	}
	if strings.HasSuffix(topicArn, ".fifo") {
		if ev.Key == "" {
			return fmt.Errorf("fifo topic %s needs an event key", topicArn)
		}
		in.MessageGroupId = sdkaws.String(ev.Key)
		in.MessageDeduplicationId = sdkaws.String(ev.Type + ":" + ev.Key)
	}

	if _, err := s.api.Publish(ctx, in); err != nil {
		return fmt.Errorf("publish %s to %s: %w", ev.Type, topicArn, err)
	}
	return nil
}
