package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table keyed by "id" that understands the
// condition and key expressions the repositories emit.
type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	pageSize int
	queries  int
	lastPut  *dynamodb.PutItemInput
	err      error
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPut = in
	id := stringAttr(in.Item, "id")
	_, exists := f.items[id]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(#id)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key, "id")]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.queries++

	parts := strings.Fields(aws.ToString(in.KeyConditionExpression))
	if len(parts) != 3 {
		return nil, errors.New("unsupported key condition")
	}
	want := stringAttr(in.ExpressionAttributeValues, parts[2])

	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if stringAttr(item, parts[0]) == want {
			matched = append(matched, item)
		}
	}
	desc := in.ScanIndexForward != nil && !*in.ScanIndexForward
	sort.Slice(matched, func(i, j int) bool {
		a, b := stringAttr(matched[i], "id"), stringAttr(matched[j], "id")
		if desc {
			return a > b
		}
		return a < b
	})

	start := 0
	if after := stringAttr(in.ExclusiveStartKey, "id"); after != "" {
		for i, item := range matched {
			if stringAttr(item, "id") == after {
				start = i + 1
				break
			}
		}
	}
	end := len(matched)
	out := &dynamodb.QueryOutput{}
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: stringAttr(matched[end-1], "id")},
		}
	}
	out.Items = matched[start:end]
	return out, nil
}
