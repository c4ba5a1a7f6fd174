package repository

import (
	"context"
	"errors"
	"strconv"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProfilesTableName = "test_profiles"
	profilesTenantIDIndex    = "tenant_id-index"
)

type parameterItem struct {
	ID       string `dynamodbav:"id"`
	Kind     string `dynamodbav:"kind"`
	Name     string `dynamodbav:"name"`
	Unit     string `dynamodbav:"unit,omitempty"`
	Operator string `dynamodbav:"operator,omitempty"`
	Limit    string `dynamodbav:"limit,omitempty"`
}

type testProfileItem struct {
	ID             string          `dynamodbav:"id"`
	TenantID       string          `dynamodbav:"tenant_id"`
	Name           string          `dynamodbav:"name"`
	ApplicableNorm string          `dynamodbav:"applicable_norm"`
	Classification string          `dynamodbav:"classification,omitempty"`
	Parameters     []parameterItem `dynamodbav:"parameters"`
	CreatedAt      string          `dynamodbav:"created_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

// TestProfileDynamoRepository persists TestProfile templates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//
// Parameters are stored inline, in order, as a list attribute.

type TestProfileDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITestProfileRepository = (*TestProfileDynamoRepository)(nil)

func NewTestProfileDynamoRepository(ddb DynamoAPI, tableName string) *TestProfileDynamoRepository {
	return &TestProfileDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProfilesTableName),
	}
}

func (r *TestProfileDynamoRepository) Create(ctx context.Context, p entities.TestProfile) (entities.TestProfile, error) {
	av, err := attributevalue.MarshalMap(toTestProfileItem(p))
	if err != nil {
		return entities.TestProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.TestProfile{}, err
	}
	return p, nil
}

// Update overwrites an existing profile. A missing profile yields a zero value.
func (r *TestProfileDynamoRepository) Update(ctx context.Context, p entities.TestProfile) (entities.TestProfile, error) {
	av, err := attributevalue.MarshalMap(toTestProfileItem(p))
	if err != nil {
		return entities.TestProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TestProfile{}, nil
		}
		return entities.TestProfile{}, err
	}
	return p, nil
}

func (r *TestProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.TestProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TestProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.TestProfile{}, nil
	}

	var it testProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TestProfile{}, err
	}
	return fromTestProfileItem(it), nil
}

func (r *TestProfileDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.TestProfile, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(profilesTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]entities.TestProfile, 0, len(raw))
	for _, item := range raw {
		var it testProfileItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		profiles = append(profiles, fromTestProfileItem(it))
	}
	return profiles, nil
}

func toTestProfileItem(p entities.TestProfile) testProfileItem {
	params := make([]parameterItem, 0, len(p.Parameters))
	for _, def := range p.Parameters {
		params = append(params, parameterItem{
			ID:       def.ID,
			Kind:     string(def.Kind),
			Name:     def.Name,
			Unit:     def.Unit,
			Operator: def.Operator,
			Limit:    floatPtrToString(def.Limit),
		})
	}
	return testProfileItem{
		ID:             p.ID,
		TenantID:       p.TenantID,
		Name:           p.Name,
		ApplicableNorm: p.ApplicableNorm,
		Classification: p.Classification,
		Parameters:     params,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromTestProfileItem(it testProfileItem) entities.TestProfile {
	params := make([]entities.ParameterDef, 0, len(it.Parameters))
	for _, p := range it.Parameters {
		params = append(params, entities.ParameterDef{
			ID:       p.ID,
			Kind:     entities.ParameterKindName(p.Kind),
			Name:     p.Name,
			Unit:     p.Unit,
			Operator: p.Operator,
			Limit:    stringToFloatPtr(p.Limit),
		})
	}
	return entities.TestProfile{
		ID:             it.ID,
		TenantID:       it.TenantID,
		Name:           it.Name,
		ApplicableNorm: it.ApplicableNorm,
		Classification: it.Classification,
		Parameters:     params,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func floatPtrToString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func stringToFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
