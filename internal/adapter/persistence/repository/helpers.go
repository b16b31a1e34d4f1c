package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"autoservice/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// ErrItemNotFound is returned by write methods that have no entity to return
// (e.g. SetChatID) when the target item does not exist.
var ErrItemNotFound = errors.New("item not found")

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, raw)
	return t
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// queryAll follows LastEvaluatedKey until the query is exhausted.
func queryAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

func scanAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

// Amounts are stored as decimal strings so no precision is lost.

type workerShareItem struct {
	WorkerID string `dynamodbav:"worker_id"`
	Name     string `dynamodbav:"name"`
	Rate     int    `dynamodbav:"rate"`
	Share    string `dynamodbav:"share"`
}

type sharesItem struct {
	CompanyShare string            `dynamodbav:"company_share"`
	WorkerShares []workerShareItem `dynamodbav:"worker_shares"`
}

func toSharesItem(s *entities.Shares) *sharesItem {
	if s == nil {
		return nil
	}
	out := &sharesItem{
		CompanyShare: s.CompanyShare.String(),
		WorkerShares: make([]workerShareItem, 0, len(s.WorkerShares)),
	}
	for _, ws := range s.WorkerShares {
		out.WorkerShares = append(out.WorkerShares, workerShareItem{
			WorkerID: ws.WorkerID,
			Name:     ws.Name,
			Rate:     ws.Rate,
			Share:    ws.Share.String(),
		})
	}
	return out
}

func fromSharesItem(it *sharesItem) *entities.Shares {
	if it == nil {
		return nil
	}
	out := &entities.Shares{
		CompanyShare: decimalOrZero(it.CompanyShare),
		WorkerShares: make([]entities.WorkerShare, 0, len(it.WorkerShares)),
	}
	for _, ws := range it.WorkerShares {
		out.WorkerShares = append(out.WorkerShares, entities.WorkerShare{
			WorkerID: ws.WorkerID,
			Name:     ws.Name,
			Rate:     ws.Rate,
			Share:    decimalOrZero(ws.Share),
		})
	}
	return out
}

func decimalOrZero(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrItemNotFound)
}

func intValue(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

func int64Value(v int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}
