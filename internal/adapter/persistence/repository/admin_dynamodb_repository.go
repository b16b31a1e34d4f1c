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

const defaultAdminsTableName = "admins"

type adminItem struct {
	ID          string `dynamodbav:"id"`
	PhoneNumber string `dynamodbav:"phone_number"`
	Role        string `dynamodbav:"role"`
	ChatID      *int64 `dynamodbav:"chat_id,omitempty"`
}

// AdminDynamoRepository reads admin accounts. Accounts are provisioned
// directly in the table; this service only links chats.
type AdminDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAdminRepository = (*AdminDynamoRepository)(nil)

func NewAdminDynamoRepository(ddb DynamoAPI, tableName string) *AdminDynamoRepository {
	return &AdminDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAdminsTableName),
	}
}

func (r *AdminDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.Admin, error) {
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
		return entities.Admin{}, err
	}
	if len(out.Items) == 0 {
		return entities.Admin{}, nil
	}

	var it adminItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Admin{}, err
	}
	return entities.Admin{
		ID:          it.ID,
		PhoneNumber: it.PhoneNumber,
		Role:        entities.RoleAdmin,
		ChatID:      it.ChatID,
	}, nil
}

func (r *AdminDynamoRepository) SetChatID(ctx context.Context, id string, chatID int64) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #chat_id = :chat_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#chat_id": "chat_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":chat_id": int64Value(chatID),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return notFound("admin", id)
		}
		return err
	}
	return nil
}
