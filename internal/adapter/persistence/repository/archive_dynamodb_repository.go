package repository

import (
	"context"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultArchiveTableName = "archive_requests"

// archiveItem stores the request fields flat next to the archive metadata.
type archiveItem struct {
	requestItem
	Disposition string      `dynamodbav:"disposition"`
	ArchivedAt  string      `dynamodbav:"archived_at"`
	Financials  *sharesItem `dynamodbav:"financials,omitempty"`
}

type ArchiveDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IArchiveRepository = (*ArchiveDynamoRepository)(nil)

func NewArchiveDynamoRepository(ddb DynamoAPI, tableName string) *ArchiveDynamoRepository {
	return &ArchiveDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultArchiveTableName),
	}
}

func (r *ArchiveDynamoRepository) GetByID(ctx context.Context, id string) (entities.ArchivedRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ArchivedRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ArchivedRequest{}, nil
	}

	var it archiveItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ArchivedRequest{}, err
	}
	return fromArchiveItem(it), nil
}

// List scans the archive. An empty disposition returns every entry.
func (r *ArchiveDynamoRepository) List(ctx context.Context, disposition entities.Disposition) ([]entities.ArchivedRequest, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	if disposition != "" {
		in.FilterExpression = aws.String("#disposition = :disposition")
		in.ExpressionAttributeNames = map[string]string{"#disposition": "disposition"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":disposition": &types.AttributeValueMemberS{Value: string(disposition)},
		}
	}

	items, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	var its []archiveItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	res := make([]entities.ArchivedRequest, 0, len(its))
	for _, it := range its {
		res = append(res, fromArchiveItem(it))
	}
	return res, nil
}

func toArchiveItem(a entities.ArchivedRequest) archiveItem {
	return archiveItem{
		requestItem: toRequestItem(a.Request),
		Disposition: string(a.Disposition),
		ArchivedAt:  formatTime(a.ArchivedAt),
		Financials:  toSharesItem(a.Financials),
	}
}

func fromArchiveItem(it archiveItem) entities.ArchivedRequest {
	return entities.ArchivedRequest{
		Request:     fromRequestItem(it.requestItem),
		Disposition: entities.Disposition(it.Disposition),
		ArchivedAt:  parseTime(it.ArchivedAt),
		Financials:  fromSharesItem(it.Financials),
	}
}
