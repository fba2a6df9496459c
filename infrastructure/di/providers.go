package di

import (
	"context"

	"todoapi/application/ports"
	"todoapi/application/services"
	"todoapi/infrastructure/config"
	dynamorepo "todoapi/infrastructure/persistence/dynamodb"
	"todoapi/infrastructure/persistence/memory"
	"todoapi/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client. A non-empty
// DynamoDBEndpoint points local runs at DynamoDB Local.
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideTodoRepository selects the store backing the repository port.
func ProvideTodoRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.TodoRepository {
	if cfg.UseMemoryStore {
		return memory.NewTodoStore()
	}
	return dynamorepo.NewTodoRepository(client, cfg.TableName, logger)
}

// ProvideMetrics creates the counter emitter. With metrics disabled the
// emitter keeps its interface but publishes nothing.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) ports.MetricsRecorder {
	if !cfg.EnableMetrics {
		return observability.NewMetrics(cfg.MetricsNamespace, nil)
	}
	return observability.NewMetrics(cfg.MetricsNamespace, client)
}

// ProvideTracer creates the tracer, or nil when tracing is disabled.
// A nil tracer is a no-op at every call site.
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("todoapi")
}

// ProvideTodoService creates the todo service
func ProvideTodoService(
	repo ports.TodoRepository,
	metrics ports.MetricsRecorder,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *services.TodoService {
	return services.NewTodoService(repo, metrics, tracer, logger)
}
