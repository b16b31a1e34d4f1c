package database

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"

	"autoservice/internal/infrastructure/config"
)

// Secondary index names shared with the repositories.
const (
	PhoneIndex  = "phone_number-index"
	StatusIndex = "status-index"
)

type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type indexDef struct {
	name string
	key  string
}

type tableDef struct {
	name    string
	hashKey string
	sortKey string
	indexes []indexDef
}

// TableDefinitions returns the create-table inputs for every table the
// service reads or writes.
func TableDefinitions(t config.Tables) []*dynamodb.CreateTableInput {
	defs := []tableDef{
		{name: t.Workers, hashKey: "id", indexes: []indexDef{{PhoneIndex, "phone_number"}}},
		{name: t.Admins, hashKey: "id", indexes: []indexDef{{PhoneIndex, "phone_number"}}},
		{name: t.Requests, hashKey: "id", indexes: []indexDef{{StatusIndex, "status"}}},
		{name: t.ArchiveRequests, hashKey: "id"},
		{name: t.Financials, hashKey: "request_id", sortKey: "id"},
		{name: t.WorkerFinancials, hashKey: "worker_id", sortKey: "id"},
		{name: t.Transactions, hashKey: "id"},
		{name: t.Diagnostics, hashKey: "request_id"},
	}

	out := make([]*dynamodb.CreateTableInput, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.input())
	}
	return out
}

func (d tableDef) input() *dynamodb.CreateTableInput {
	attrs := map[string]struct{}{d.hashKey: {}}
	schema := []types.KeySchemaElement{{AttributeName: aws.String(d.hashKey), KeyType: types.KeyTypeHash}}
	if d.sortKey != "" {
		attrs[d.sortKey] = struct{}{}
		schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(d.sortKey), KeyType: types.KeyTypeRange})
	}

	var gsis []types.GlobalSecondaryIndex
	for _, idx := range d.indexes {
		attrs[idx.key] = struct{}{}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(idx.key), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	defs := make([]types.AttributeDefinition, 0, len(attrs))
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(d.name),
		AttributeDefinitions:   defs,
		KeySchema:              schema,
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}

// EnsureTables creates missing tables. Tables that already exist are left
// untouched.
func EnsureTables(ctx context.Context, api TableAPI, t config.Tables) error {
	for _, in := range TableDefinitions(t) {
		_, err := api.CreateTable(ctx, in)
		if err == nil {
			log.Infof("[database] table created name=%s", aws.ToString(in.TableName))
			continue
		}
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			log.Debugf("[database] table exists name=%s", aws.ToString(in.TableName))
			continue
		}
		return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
	}
	return nil
}
