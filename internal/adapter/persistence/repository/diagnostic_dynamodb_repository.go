package repository

import (
	"context"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultDiagnosticsTableName = "diagnostics"

type diagnosticEntryItem struct {
	Name   string `dynamodbav:"name"`
	Status string `dynamodbav:"status"`
}

type diagnosticItem struct {
	RequestID string                `dynamodbav:"request_id"`
	Items     []diagnosticEntryItem `dynamodbav:"items"`
	CreatedAt string                `dynamodbav:"created_at"`
	UpdatedAt string                `dynamodbav:"updated_at"`
}

// DiagnosticDynamoRepository stores one inspection card per request, keyed
// by request id.
type DiagnosticDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDiagnosticRepository = (*DiagnosticDynamoRepository)(nil)

func NewDiagnosticDynamoRepository(ddb DynamoAPI, tableName string) *DiagnosticDynamoRepository {
	return &DiagnosticDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultDiagnosticsTableName),
	}
}

func (r *DiagnosticDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Diagnostic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("request_id", requestID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Diagnostic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Diagnostic{}, nil
	}

	var it diagnosticItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Diagnostic{}, err
	}
	return fromDiagnosticItem(it), nil
}

// Save overwrites the card for the request.
func (r *DiagnosticDynamoRepository) Save(ctx context.Context, d entities.Diagnostic) (entities.Diagnostic, error) {
	av, err := attributevalue.MarshalMap(toDiagnosticItem(d))
	if err != nil {
		return entities.Diagnostic{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Diagnostic{}, err
	}
	return d, nil
}

func toDiagnosticItem(d entities.Diagnostic) diagnosticItem {
	items := make([]diagnosticEntryItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, diagnosticEntryItem{Name: it.Name, Status: string(it.Status)})
	}
	return diagnosticItem{
		RequestID: d.RequestID,
		Items:     items,
		CreatedAt: formatTime(d.CreatedAt),
		UpdatedAt: formatTime(d.UpdatedAt),
	}
}

func fromDiagnosticItem(it diagnosticItem) entities.Diagnostic {
	items := make([]entities.DiagnosticItem, 0, len(it.Items))
	for _, e := range it.Items {
		items = append(items, entities.DiagnosticItem{Name: e.Name, Status: entities.ItemStatus(e.Status)})
	}
	return entities.Diagnostic{
		RequestID: it.RequestID,
		Items:     items,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
