package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records inputs and returns canned outputs.
type fakeDynamo struct {
	putIn      []*dynamodb.PutItemInput
	getOut     *dynamodb.GetItemOutput
	updateIn   []*dynamodb.UpdateItemInput
	updateOut  *dynamodb.UpdateItemOutput
	deleteIn   []*dynamodb.DeleteItemInput
	queryIn    []*dynamodb.QueryInput
	queryPages []*dynamodb.QueryOutput
	scanIn     []*dynamodb.ScanInput
	scanPages  []*dynamodb.ScanOutput
	transactIn []*dynamodb.TransactWriteItemsInput
	err        error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = append(f.putIn, in)
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = append(f.updateIn, in)
	if f.err != nil {
		return nil, f.err
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = append(f.deleteIn, in)
	return &dynamodb.DeleteItemOutput{}, f.err
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = append(f.queryIn, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queryPages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.queryPages[0]
	f.queryPages = f.queryPages[1:]
	return page, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = append(f.scanIn, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.scanPages) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	page := f.scanPages[0]
	f.scanPages = f.scanPages[1:]
	return page, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactIn = append(f.transactIn, in)
	return &dynamodb.TransactWriteItemsOutput{}, f.err
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}
