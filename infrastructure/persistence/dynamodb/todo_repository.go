package dynamodb

import (
	"context"
	"errors"

	"todoapi/application/ports"
	"todoapi/domain/todo"
	appErrors "todoapi/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// keyAttribute is the table's partition key.
const keyAttribute = "todoId"

// TodoRepository implements ports.TodoRepository against a single
// DynamoDB table keyed by todoId. Update and Delete carry an
// attribute_exists condition so the existence check is atomic with the
// write; there is no separate lookup to race against.
type TodoRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *TodoRepository {
	return &TodoRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Insert writes a fully-formed record unconditionally.
func (r *TodoRepository) Insert(ctx context.Context, t *todo.Todo) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return appErrors.NewInternalError("failed to marshal todo item", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.logger.Error("Failed to put todo item",
			zap.String("todoId", t.ID),
			zap.Error(err),
		)
		return appErrors.NewDatabaseError("Database error occurred while creating todo", err)
	}

	return nil
}

// GetByID performs a point lookup. A miss is a not-found error, not a
// database error.
func (r *TodoRepository) GetByID(ctx context.Context, id string) (*todo.Todo, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       todoKey(id),
	})
	if err != nil {
		r.logger.Error("Failed to get todo item",
			zap.String("todoId", id),
			zap.Error(err),
		)
		return nil, appErrors.NewDatabaseError("Database error occurred while getting todo", err)
	}

	if len(result.Item) == 0 {
		return nil, appErrors.NewNotFoundError("Todo not found")
	}

	var t todo.Todo
	if err := attributevalue.UnmarshalMap(result.Item, &t); err != nil {
		return nil, appErrors.NewInternalError("failed to unmarshal todo item", err)
	}

	return &t, nil
}

// Scan retrieves every record, following pagination until the table is
// exhausted. Ordering is whatever the store returns; callers sort.
func (r *TodoRepository) Scan(ctx context.Context) ([]todo.Todo, error) {
	var todos []todo.Todo
	var startKey map[string]types.AttributeValue

	for {
		result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			r.logger.Error("Failed to scan todos", zap.Error(err))
			return nil, appErrors.NewDatabaseError("Database error occurred while listing todos", err)
		}

		var page []todo.Todo
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, appErrors.NewInternalError("failed to unmarshal todo items", err)
		}
		todos = append(todos, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return todos, nil
}

// Update applies the present fields plus updatedAt iff the record
// exists, returning the complete post-update record. The SET clauses
// are built from whichever fields are present.
func (r *TodoRepository) Update(ctx context.Context, id string, fields todo.UpdateFields, updatedAt string) (*todo.Todo, error) {
	update := expression.Set(expression.Name("updatedAt"), expression.Value(updatedAt))
	if fields.Title != nil {
		update = update.Set(expression.Name("title"), expression.Value(*fields.Title))
	}
	if fields.Description != nil {
		update = update.Set(expression.Name("description"), expression.Value(*fields.Description))
	}
	if fields.Completed != nil {
		update = update.Set(expression.Name("completed"), expression.Value(*fields.Completed))
	}

	cond := expression.AttributeExists(expression.Name(keyAttribute))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(cond).
		Build()
	if err != nil {
		return nil, appErrors.NewInternalError("failed to build update expression", err)
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       todoKey(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, appErrors.NewNotFoundError("Todo not found")
		}
		r.logger.Error("Failed to update todo item",
			zap.String("todoId", id),
			zap.Error(err),
		)
		return nil, appErrors.NewDatabaseError("Database error occurred while updating todo", err)
	}

	var t todo.Todo
	if err := attributevalue.UnmarshalMap(result.Attributes, &t); err != nil {
		return nil, appErrors.NewInternalError("failed to unmarshal updated todo", err)
	}

	return &t, nil
}

// Delete removes the record iff it exists.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 todoKey(id),
		ConditionExpression: aws.String("attribute_exists(" + keyAttribute + ")"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return appErrors.NewNotFoundError("Todo not found")
		}
		r.logger.Error("Failed to delete todo item",
			zap.String("todoId", id),
			zap.Error(err),
		)
		return appErrors.NewDatabaseError("Database error occurred while deleting todo", err)
	}

	return nil
}

func todoKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

var _ ports.TodoRepository = (*TodoRepository)(nil)
