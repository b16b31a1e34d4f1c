package repository

import (
	"context"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultFinancialsTableName       = "financials"
	defaultTransactionsTableName     = "transactions"
	defaultWorkerFinancialsTableName = "worker_financials"
)

type financialItem struct {
	RequestID   string `dynamodbav:"request_id"`
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	Amount      string `dynamodbav:"amount"`
	Description string `dynamodbav:"description"`
	Date        string `dynamodbav:"date"`
	Auto        bool   `dynamodbav:"auto"`
}

type transactionItem struct {
	ID           string `dynamodbav:"id"`
	Type         string `dynamodbav:"type"`
	Amount       string `dynamodbav:"amount"`
	CategoryKind string `dynamodbav:"category_kind"`
	Category     string `dynamodbav:"category"`
	Comment      string `dynamodbav:"comment"`
	RequestID    string `dynamodbav:"request_id,omitempty"`
	Date         string `dynamodbav:"date"`
	Auto         bool   `dynamodbav:"auto"`
}

type workerLedgerItem struct {
	WorkerID        string `dynamodbav:"worker_id"`
	ID              string `dynamodbav:"id"`
	Type            string `dynamodbav:"type"`
	Amount          string `dynamodbav:"amount"`
	Description     string `dynamodbav:"description"`
	Category        string `dynamodbav:"category,omitempty"`
	Date            string `dynamodbav:"date"`
	Auto            bool   `dynamodbav:"auto"`
	SourceRequestID string `dynamodbav:"source_request_id,omitempty"`
}

// FinancialDynamoRepository stores request-scoped records.
//
// Table requirements:
//   - PK: request_id (string)
//   - SK: id (string)
type FinancialDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFinancialRepository = (*FinancialDynamoRepository)(nil)

func NewFinancialDynamoRepository(ddb DynamoAPI, tableName string) *FinancialDynamoRepository {
	return &FinancialDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultFinancialsTableName),
	}
}

func (r *FinancialDynamoRepository) ListByRequest(ctx context.Context, requestID string) ([]entities.FinancialRecord, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var its []financialItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	res := make([]entities.FinancialRecord, 0, len(its))
	for _, it := range its {
		res = append(res, fromFinancialItem(it))
	}
	return res, nil
}

// TransactionDynamoRepository stores the company ledger.
type TransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI, tableName string) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.CompanyTransaction) (entities.CompanyTransaction, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toTransactionItem(t)); err != nil {
		return entities.CompanyTransaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) List(ctx context.Context) ([]entities.CompanyTransaction, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var its []transactionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	res := make([]entities.CompanyTransaction, 0, len(its))
	for _, it := range its {
		res = append(res, fromTransactionItem(it))
	}
	return res, nil
}

// WorkerLedgerDynamoRepository stores worker personal ledgers.
//
// Table requirements:
//   - PK: worker_id (string), SK: id (string)
type WorkerLedgerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkerLedgerRepository = (*WorkerLedgerDynamoRepository)(nil)

func NewWorkerLedgerDynamoRepository(ddb DynamoAPI, tableName string) *WorkerLedgerDynamoRepository {
	return &WorkerLedgerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultWorkerFinancialsTableName),
	}
}

func (r *WorkerLedgerDynamoRepository) Create(ctx context.Context, e entities.WorkerLedgerEntry) (entities.WorkerLedgerEntry, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toWorkerLedgerItem(e)); err != nil {
		return entities.WorkerLedgerEntry{}, err
	}
	return e, nil
}

func (r *WorkerLedgerDynamoRepository) ListByWorker(ctx context.Context, workerID string) ([]entities.WorkerLedgerEntry, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#worker_id = :worker_id"),
		ExpressionAttributeNames: map[string]string{
			"#worker_id": "worker_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":worker_id": &types.AttributeValueMemberS{Value: workerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var its []workerLedgerItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	res := make([]entities.WorkerLedgerEntry, 0, len(its))
	for _, it := range its {
		res = append(res, fromWorkerLedgerItem(it))
	}
	return res, nil
}

func putNew(ctx context.Context, ddb DynamoAPI, table, idAttr string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": idAttr,
		},
	})
	return err
}

func toFinancialItem(r entities.FinancialRecord) financialItem {
	amount := r.RawAmount
	if r.Amount.Valid {
		amount = r.Amount.Decimal.String()
	}
	return financialItem{
		ID:          r.ID,
		RequestID:   r.RequestID,
		Type:        string(r.Type),
		Amount:      amount,
		Description: r.Description,
		Date:        formatTime(r.Date),
		Auto:        r.Auto,
	}
}

// fromFinancialItem keeps unparseable amounts as RawAmount so they can be
// reported instead of silently counted as zero.
func fromFinancialItem(it financialItem) entities.FinancialRecord {
	rec := entities.FinancialRecord{
		ID:          it.ID,
		RequestID:   it.RequestID,
		Type:        entities.EntryType(it.Type),
		RawAmount:   it.Amount,
		Description: it.Description,
		Date:        parseTime(it.Date),
		Auto:        it.Auto,
	}
	if d, err := decimal.NewFromString(it.Amount); err == nil {
		rec.Amount = decimal.NewNullDecimal(d)
	}
	return rec
}

func toTransactionItem(t entities.CompanyTransaction) transactionItem {
	return transactionItem{
		ID:           t.ID,
		Type:         string(t.Type),
		Amount:       t.Amount.String(),
		CategoryKind: string(t.Category.Kind),
		Category:     t.Category.Value,
		Comment:      t.Comment,
		RequestID:    t.RequestID,
		Date:         formatTime(t.Date),
		Auto:         t.Auto,
	}
}

func fromTransactionItem(it transactionItem) entities.CompanyTransaction {
	category := entities.LabelCategory(it.Category)
	if entities.CategoryKind(it.CategoryKind) == entities.CategoryKindWorker {
		category = entities.WorkerCategory(it.Category)
	}
	return entities.CompanyTransaction{
		ID:        it.ID,
		Type:      entities.EntryType(it.Type),
		Amount:    decimalOrZero(it.Amount),
		Category:  category,
		Comment:   it.Comment,
		RequestID: it.RequestID,
		Date:      parseTime(it.Date),
		Auto:      it.Auto,
	}
}

func toWorkerLedgerItem(e entities.WorkerLedgerEntry) workerLedgerItem {
	return workerLedgerItem{
		WorkerID:        e.WorkerID,
		ID:              e.ID,
		Type:            string(e.Type),
		Amount:          e.Amount.String(),
		Description:     e.Description,
		Category:        e.Category,
		Date:            formatTime(e.Date),
		Auto:            e.Auto,
		SourceRequestID: e.SourceRequestID,
	}
}

func fromWorkerLedgerItem(it workerLedgerItem) entities.WorkerLedgerEntry {
	return entities.WorkerLedgerEntry{
		ID:              it.ID,
		WorkerID:        it.WorkerID,
		Type:            entities.EntryType(it.Type),
		Amount:          decimalOrZero(it.Amount),
		Description:     it.Description,
		Category:        it.Category,
		Date:            parseTime(it.Date),
		Auto:            it.Auto,
		SourceRequestID: it.SourceRequestID,
	}
}
