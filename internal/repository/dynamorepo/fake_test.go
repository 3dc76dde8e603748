package dynamorepo

import (
	"context"
	"errors"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errInjected = errors.New("injected failure")

// fakeDynamo is an in-memory stand-in for a single DynamoDB table keyed by (pk, sk)
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue

	// PageSize limits items per Query page when set, exercising pagination
	PageSize int

	PutErr    error
	DeleteErr error
	QueryErr  error

	Puts    int
	Deletes int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func attrString(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.PutErr != nil {
		return nil, f.PutErr
	}
	sk := attrString(params.Item, "sk")
	if _, exists := f.items[sk]; exists && params.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional check failed")}
	}
	f.items[sk] = params.Item
	f.Puts++
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	delete(f.items, attrString(params.Key, "sk"))
	f.Deletes++
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}

	keys := make([]string, 0, len(f.items))
	for sk := range f.items {
		keys = append(keys, sk)
	}
	sort.Strings(keys)
	if params.ScanIndexForward != nil && !*params.ScanIndexForward {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}

	if params.ExclusiveStartKey != nil {
		start := attrString(params.ExclusiveStartKey, "sk")
		for i, sk := range keys {
			if sk == start {
				keys = keys[i+1:]
				break
			}
		}
	}

	limit := len(keys)
	if params.Limit != nil && int(*params.Limit) < limit {
		limit = int(*params.Limit)
	}
	if f.PageSize > 0 && f.PageSize < limit {
		limit = f.PageSize
	}

	out := &dynamodb.QueryOutput{}
	for _, sk := range keys[:limit] {
		out.Items = append(out.Items, f.items[sk])
	}
	if limit < len(keys) && f.PageSize > 0 {
		last := keys[limit-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: partitionKey},
			"sk": &types.AttributeValueMemberS{Value: last},
		}
	}
	return out, nil
}
