package repository

import (
	"context"

	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/database"
	"autoservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkersTableName = "workers"

type workerItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	PhoneNumber string `dynamodbav:"phone_number"`
	Rate        int    `dynamodbav:"rate"`
	ChatID      *int64 `dynamodbav:"chat_id,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// WorkerDynamoRepository persists workers in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI phone_number-index: phone_number (string)
type WorkerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkerRepository = (*WorkerDynamoRepository)(nil)

func NewWorkerDynamoRepository(ddb DynamoAPI, tableName string) *WorkerDynamoRepository {
	return &WorkerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultWorkersTableName),
	}
}

func (r *WorkerDynamoRepository) Create(ctx context.Context, w entities.Worker) (entities.Worker, error) {
	av, err := attributevalue.MarshalMap(toWorkerItem(w))
	if err != nil {
		return entities.Worker{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Worker{}, err
	}
	return w, nil
}

func (r *WorkerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Worker, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Worker{}, err
	}
	if len(out.Item) == 0 {
		return entities.Worker{}, nil
	}

	var it workerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Worker{}, err
	}
	return fromWorkerItem(it), nil
}

// GetByPhone reads the phone index, which is eventually consistent.
func (r *WorkerDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.Worker, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.PhoneIndex),
		KeyConditionExpression: aws.String("#phone = :phone"),
		ExpressionAttributeNames: map[string]string{
			"#phone": "phone_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Worker{}, err
	}
	if len(out.Items) == 0 {
		return entities.Worker{}, nil
	}

	var it workerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Worker{}, err
	}
	return fromWorkerItem(it), nil
}

func (r *WorkerDynamoRepository) List(ctx context.Context) ([]entities.Worker, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var its []workerItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	res := make([]entities.Worker, 0, len(its))
	for _, it := range its {
		res = append(res, fromWorkerItem(it))
	}
	return res, nil
}

func (r *WorkerDynamoRepository) Update(ctx context.Context, w entities.Worker) (entities.Worker, error) {
	return r.update(ctx, w.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #phone = :phone, #rate = :rate, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: w.Name},
			":phone":      &types.AttributeValueMemberS{Value: w.PhoneNumber},
			":rate":       intValue(w.Rate),
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":       "name",
			"#phone":      "phone_number",
			"#rate":       "rate",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkerDynamoRepository) UpdateRate(ctx context.Context, id string, rate int) (entities.Worker, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #rate = :rate, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":rate":       intValue(rate),
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#rate":       "rate",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkerDynamoRepository) SetChatID(ctx context.Context, id string, chatID int64) error {
	w, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #chat_id = :chat_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":chat_id":    int64Value(chatID),
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#chat_id":    "chat_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return err
	}
	if w.ID == "" {
		return notFound("worker", id)
	}
	return nil
}

func (r *WorkerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WorkerDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Worker, error) {
	updateExpr, values, names := build(nowString())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Worker{}, nil
		}
		return entities.Worker{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Worker{}, nil
	}
	var it workerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Worker{}, err
	}
	return fromWorkerItem(it), nil
}

func toWorkerItem(w entities.Worker) workerItem {
	return workerItem{
		ID:          w.ID,
		Name:        w.Name,
		PhoneNumber: w.PhoneNumber,
		Rate:        w.Rate,
		ChatID:      w.ChatID,
		CreatedAt:   formatTime(w.CreatedAt),
		UpdatedAt:   formatTime(w.UpdatedAt),
	}
}

func fromWorkerItem(it workerItem) entities.Worker {
	return entities.Worker{
		ID:          it.ID,
		Name:        it.Name,
		PhoneNumber: it.PhoneNumber,
		Rate:        it.Rate,
		ChatID:      it.ChatID,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
