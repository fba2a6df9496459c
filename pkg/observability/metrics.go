package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics publishes usage counters to CloudWatch under a fixed
// namespace. A nil client disables publishing, which keeps local runs
// and tests quiet without branching at every call site.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
}

// NewMetrics creates a new metrics instance.
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// IncrementCounter publishes a single counter increment of value 1.
// No batching and no retries; the caller decides what to do with the
// returned error, which for usage counters is log-and-continue.
func (m *Metrics) IncrementCounter(ctx context.Context, name string) error {
	if m.client == nil {
		return nil
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(time.Now()),
			},
		},
	}

	_, err := m.client.PutMetricData(ctx, input)
	return err
}
