package repository

import (
	"context"
	"errors"
	"fmt"

	"autoservice/internal/infrastructure/config"
	"autoservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

// DynamoAtomicWriter commits write batches with TransactWriteItems.
type DynamoAtomicWriter struct {
	ddb    DynamoAPI
	tables config.Tables
}

var _ interfaces.IAtomicWriter = (*DynamoAtomicWriter)(nil)

func NewDynamoAtomicWriter(ddb DynamoAPI, tables config.Tables) *DynamoAtomicWriter {
	tables.Requests = tableOrDefault(tables.Requests, defaultRequestsTableName)
	tables.ArchiveRequests = tableOrDefault(tables.ArchiveRequests, defaultArchiveTableName)
	tables.Financials = tableOrDefault(tables.Financials, defaultFinancialsTableName)
	tables.Transactions = tableOrDefault(tables.Transactions, defaultTransactionsTableName)
	tables.WorkerFinancials = tableOrDefault(tables.WorkerFinancials, defaultWorkerFinancialsTableName)
	return &DynamoAtomicWriter{ddb: ddb, tables: tables}
}

func (w *DynamoAtomicWriter) AtomicWrite(ctx context.Context, ops []interfaces.WriteOperation) error {
	if len(ops) == 0 {
		return nil
	}
	if len(ops) > interfaces.MaxAtomicOperations {
		return fmt.Errorf("%w: %d", interfaces.ErrTooManyOperations, len(ops))
	}

	items := make([]types.TransactWriteItem, 0, len(ops))
	for i, op := range ops {
		item, err := w.toTransactItem(op)
		if err != nil {
			return fmt.Errorf("atomic write op %d: %w", i, err)
		}
		items = append(items, item)
	}

	_, err := w.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		if conditionFailedInTransaction(err) {
			log.Warnf("[atomic][repository] transaction condition failed ops=%d", len(ops))
			return interfaces.ErrConditionFailed
		}
		log.Errorf("[atomic][repository] transaction failed ops=%d err=%v", len(ops), err)
		return err
	}
	log.Debugf("[atomic][repository] transaction committed ops=%d", len(ops))
	return nil
}

func (w *DynamoAtomicWriter) toTransactItem(op interfaces.WriteOperation) (types.TransactWriteItem, error) {
	switch o := op.(type) {
	case interfaces.CheckServiceRequestExists:
		return types.TransactWriteItem{
			ConditionCheck: &types.ConditionCheck{
				TableName:           aws.String(w.tables.Requests),
				Key:                 stringKey("id", o.ID),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		}, nil
	case interfaces.PutServiceRequest:
		return putIfAbsent(w.tables.Requests, "id", toRequestItem(o.Request))
	case interfaces.PutArchivedRequest:
		return putIfAbsent(w.tables.ArchiveRequests, "id", toArchiveItem(o.Archived))
	case interfaces.PutFinancialRecord:
		return putIfAbsent(w.tables.Financials, "id", toFinancialItem(o.Record))
	case interfaces.PutCompanyTransaction:
		return putIfAbsent(w.tables.Transactions, "id", toTransactionItem(o.Transaction))
	case interfaces.PutWorkerLedgerEntry:
		return putIfAbsent(w.tables.WorkerFinancials, "id", toWorkerLedgerItem(o.Entry))
	case interfaces.DeleteServiceRequest:
		return types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:           aws.String(w.tables.Requests),
				Key:                 stringKey("id", o.ID),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberS{Value: string(o.ExpectedStatus)},
				},
			},
		}, nil
	default:
		return types.TransactWriteItem{}, fmt.Errorf("unsupported write operation %T", op)
	}
}

func putIfAbsent(table, idAttr string, item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": idAttr,
			},
		},
	}, nil
}

func conditionFailedInTransaction(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
