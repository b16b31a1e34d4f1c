package repository

import (
	"context"
	"errors"
	"testing"

	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/config"
	"autoservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestDynamoAtomicWriter_AtomicWrite(t *testing.T) {
	t.Run("builds one transaction", func(t *testing.T) {
		ddb := &fakeDynamo{}
		w := NewDynamoAtomicWriter(ddb, config.Tables{ArchiveRequests: "archive"})

		err := w.AtomicWrite(context.Background(), []interfaces.WriteOperation{
			interfaces.PutCompanyTransaction{Transaction: entities.CompanyTransaction{ID: "t1", Amount: decimal.NewFromInt(800)}},
			interfaces.PutWorkerLedgerEntry{Entry: entities.WorkerLedgerEntry{ID: "e1", WorkerID: "w1", Amount: decimal.NewFromInt(240)}},
			interfaces.PutArchivedRequest{Archived: entities.ArchivedRequest{Request: entities.ServiceRequest{ID: "r1"}, Disposition: entities.DispositionArchived}},
			interfaces.DeleteServiceRequest{ID: "r1", ExpectedStatus: entities.RequestStatusConfirmation},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(ddb.transactIn) != 1 {
			t.Fatalf("expected a single transaction, got %d", len(ddb.transactIn))
		}

		items := ddb.transactIn[0].TransactItems
		if len(items) != 4 {
			t.Fatalf("expected 4 items, got %d", len(items))
		}
		if aws.ToString(items[0].Put.TableName) != "transactions" || aws.ToString(items[1].Put.TableName) != "worker_financials" {
			t.Fatalf("unexpected tables")
		}
		archived := items[2].Put
		if aws.ToString(archived.TableName) != "archive" || archived.Item["disposition"].(*types.AttributeValueMemberS).Value != "archived" {
			t.Fatalf("unexpected archive put: %+v", archived)
		}
		del := items[3].Delete
		if del == nil || aws.ToString(del.TableName) != "requests" {
			t.Fatalf("expected delete on requests")
		}
		if del.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value != "confirmation" {
			t.Fatalf("delete must be guarded by the expected status")
		}
	})

	t.Run("record put is guarded by a live request check", func(t *testing.T) {
		ddb := &fakeDynamo{}
		w := NewDynamoAtomicWriter(ddb, config.Tables{})

		err := w.AtomicWrite(context.Background(), []interfaces.WriteOperation{
			interfaces.CheckServiceRequestExists{ID: "r1"},
			interfaces.PutFinancialRecord{Record: entities.FinancialRecord{ID: "f1", RequestID: "r1", Type: entities.EntryIncome, RawAmount: "100"}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		items := ddb.transactIn[0].TransactItems
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		check := items[0].ConditionCheck
		if check == nil || aws.ToString(check.TableName) != "requests" {
			t.Fatalf("expected condition check on requests, got %+v", items[0])
		}
		if aws.ToString(check.ConditionExpression) != "attribute_exists(#id)" {
			t.Fatalf("unexpected condition: %s", aws.ToString(check.ConditionExpression))
		}
		if check.Key["id"].(*types.AttributeValueMemberS).Value != "r1" {
			t.Fatalf("unexpected key: %+v", check.Key)
		}
		put := items[1].Put
		if put == nil || aws.ToString(put.TableName) != "financials" {
			t.Fatalf("expected put on financials, got %+v", items[1])
		}
		if put.Item["request_id"].(*types.AttributeValueMemberS).Value != "r1" {
			t.Fatalf("record must be keyed by its request")
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		ddb := &fakeDynamo{}
		if err := NewDynamoAtomicWriter(ddb, config.Tables{}).AtomicWrite(context.Background(), nil); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(ddb.transactIn) != 0 {
			t.Fatalf("expected no call")
		}
	})

	t.Run("too many operations", func(t *testing.T) {
		ops := make([]interfaces.WriteOperation, interfaces.MaxAtomicOperations+1)
		for i := range ops {
			ops[i] = interfaces.PutFinancialRecord{}
		}
		err := NewDynamoAtomicWriter(&fakeDynamo{}, config.Tables{}).AtomicWrite(context.Background(), ops)
		if !errors.Is(err, interfaces.ErrTooManyOperations) {
			t.Fatalf("expected ErrTooManyOperations, got %v", err)
		}
	})

	t.Run("condition failure is translated", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}}
		err := NewDynamoAtomicWriter(ddb, config.Tables{}).AtomicWrite(context.Background(), []interfaces.WriteOperation{
			interfaces.DeleteServiceRequest{ID: "r1", ExpectedStatus: entities.RequestStatusConfirmation},
		})
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("other cancellations pass through", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
		}}
		err := NewDynamoAtomicWriter(ddb, config.Tables{}).AtomicWrite(context.Background(), []interfaces.WriteOperation{
			interfaces.PutFinancialRecord{Record: entities.FinancialRecord{ID: "f1"}},
		})
		if err == nil || errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})
}
