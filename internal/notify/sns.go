package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSNotifier publishes notifications to an SNS topic.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
}

// NewSNSNotifier creates an SNS-backed notifier.
func NewSNSNotifier(client *sns.Client, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

// Publish sends the notification to the configured topic. With no topic
// configured it is a silent no-op, matching a deployment without SNS wired.
func (n *SNSNotifier) Publish(ctx context.Context, subject, message string) error {
	if n.topicARN == "" {
		return nil
	}
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	return err
}
