package repository

import (
	"context"
	"errors"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStandardsTableName = "calibration_standards"
	standardsTenantIDIndex    = "tenant_id-index"
)

type standardItem struct {
	ID                string `dynamodbav:"id"`
	TenantID          string `dynamodbav:"tenant_id"`
	Name              string `dynamodbav:"name"`
	Manufacturer      string `dynamodbav:"manufacturer,omitempty"`
	Model             string `dynamodbav:"model,omitempty"`
	SerialNumber      string `dynamodbav:"serial_number,omitempty"`
	CalibrationLab    string `dynamodbav:"calibration_lab,omitempty"`
	CertificateNumber string `dynamodbav:"certificate_number,omitempty"`
	CalibrationDate   string `dynamodbav:"calibration_date,omitempty"`
	ExpiryDate        string `dynamodbav:"expiry_date,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// StandardDynamoRepository persists the calibration standard catalog.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type StandardDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStandardRepository = (*StandardDynamoRepository)(nil)

func NewStandardDynamoRepository(ddb DynamoAPI, tableName string) *StandardDynamoRepository {
	return &StandardDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultStandardsTableName),
	}
}

func (r *StandardDynamoRepository) Create(ctx context.Context, s entities.Standard) (entities.Standard, error) {
	av, err := attributevalue.MarshalMap(toStandardItem(s))
	if err != nil {
		return entities.Standard{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Standard{}, err
	}
	return s, nil
}

func (r *StandardDynamoRepository) Update(ctx context.Context, s entities.Standard) (entities.Standard, error) {
	av, err := attributevalue.MarshalMap(toStandardItem(s))
	if err != nil {
		return entities.Standard{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Standard{}, nil
		}
		return entities.Standard{}, err
	}
	return s, nil
}

func (r *StandardDynamoRepository) GetByID(ctx context.Context, id string) (entities.Standard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Standard{}, err
	}
	if len(out.Item) == 0 {
		return entities.Standard{}, nil
	}

	var it standardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Standard{}, err
	}
	return fromStandardItem(it), nil
}

func (r *StandardDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Standard, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(standardsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Standard, 0, len(raw))
	for _, item := range raw {
		var it standardItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromStandardItem(it))
	}
	return out, nil
}

func toStandardItem(s entities.Standard) standardItem {
	return standardItem{
		ID:                s.ID,
		TenantID:          s.TenantID,
		Name:              s.Name,
		Manufacturer:      s.Manufacturer,
		Model:             s.Model,
		SerialNumber:      s.SerialNumber,
		CalibrationLab:    s.CalibrationLab,
		CertificateNumber: s.CertificateNumber,
		CalibrationDate:   formatTimePtr(s.CalibrationDate),
		ExpiryDate:        formatTimePtr(s.ExpiryDate),
		CreatedAt:         formatTime(s.CreatedAt),
		UpdatedAt:         formatTime(s.UpdatedAt),
	}
}

func fromStandardItem(it standardItem) entities.Standard {
	return entities.Standard{
		ID:                it.ID,
		TenantID:          it.TenantID,
		Name:              it.Name,
		Manufacturer:      it.Manufacturer,
		Model:             it.Model,
		SerialNumber:      it.SerialNumber,
		CalibrationLab:    it.CalibrationLab,
		CertificateNumber: it.CertificateNumber,
		CalibrationDate:   parseTimePtr(it.CalibrationDate),
		ExpiryDate:        parseTimePtr(it.ExpiryDate),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
