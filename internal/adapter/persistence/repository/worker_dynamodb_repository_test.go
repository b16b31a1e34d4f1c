package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestWorkerDynamoRepository_Create(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewWorkerDynamoRepository(ddb, "")

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	w := entities.Worker{ID: "w1", Name: "Пётр", PhoneNumber: "+79991234567", Rate: 30, CreatedAt: created, UpdatedAt: created}
	if _, err := repo.Create(context.Background(), w); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in := ddb.putIn[0]
	if aws.ToString(in.TableName) != "workers" || aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("unexpected put: %s %s", aws.ToString(in.TableName), aws.ToString(in.ConditionExpression))
	}
	if _, ok := in.Item["chat_id"]; ok {
		t.Fatalf("unlinked worker must not store chat_id")
	}
	if rate := in.Item["rate"].(*types.AttributeValueMemberN).Value; rate != "30" {
		t.Fatalf("unexpected rate %s", rate)
	}
}

func TestWorkerDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		repo := NewWorkerDynamoRepository(&fakeDynamo{}, "")
		w, err := repo.GetByID(context.Background(), "w1")
		if err != nil || w.ID != "" {
			t.Fatalf("expected zero worker, got %+v %v", w, err)
		}
	})

	t.Run("found", func(t *testing.T) {
		chat := int64(777)
		ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: mustMarshal(t, workerItem{
			ID: "w1", Name: "Пётр", PhoneNumber: "+79991234567", Rate: 30, ChatID: &chat,
			CreatedAt: "2025-03-01T10:00:00Z",
		})}}
		repo := NewWorkerDynamoRepository(ddb, "")

		w, err := repo.GetByID(context.Background(), "w1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if w.Rate != 30 || w.ChatID == nil || *w.ChatID != 777 || w.CreatedAt.IsZero() {
			t.Fatalf("unexpected worker: %+v", w)
		}
	})
}

func TestWorkerDynamoRepository_GetByPhone(t *testing.T) {
	ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{
		mustMarshal(t, workerItem{ID: "w1", PhoneNumber: "+79991234567"}),
	}}}}
	repo := NewWorkerDynamoRepository(ddb, "staff")

	w, err := repo.GetByPhone(context.Background(), "+79991234567")
	if err != nil || w.ID != "w1" {
		t.Fatalf("unexpected result: %+v %v", w, err)
	}
	in := ddb.queryIn[0]
	if aws.ToString(in.IndexName) != database.PhoneIndex || aws.ToString(in.TableName) != "staff" {
		t.Fatalf("unexpected query: %+v", in)
	}
}

func TestWorkerDynamoRepository_MissingTargets(t *testing.T) {
	condErr := &types.ConditionalCheckFailedException{}

	t.Run("update rate", func(t *testing.T) {
		repo := NewWorkerDynamoRepository(&fakeDynamo{err: condErr}, "")
		w, err := repo.UpdateRate(context.Background(), "w1", 40)
		if err != nil || w.ID != "" {
			t.Fatalf("expected zero worker, got %+v %v", w, err)
		}
	})

	t.Run("set chat id", func(t *testing.T) {
		repo := NewWorkerDynamoRepository(&fakeDynamo{err: condErr}, "")
		if err := repo.SetChatID(context.Background(), "w1", 1); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		repo := NewWorkerDynamoRepository(&fakeDynamo{err: condErr}, "")
		ok, err := repo.Delete(context.Background(), "w1")
		if err != nil || ok {
			t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		repo := NewWorkerDynamoRepository(&fakeDynamo{err: errors.New("throttled")}, "")
		if _, err := repo.Delete(context.Background(), "w1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
