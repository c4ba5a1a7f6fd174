package repository

import (
	"context"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExecutionsTableName = "test_executions"
	executionsOrderIDIndex     = "order_id-index"
)

// Conformity is stored as a string so the pending state survives the round trip.
const (
	conformityPending = ""
	conformityTrue    = "true"
	conformityFalse   = "false"
)

type testPointItem struct {
	ParameterID   string `dynamodbav:"parameter_id"`
	Kind          string `dynamodbav:"kind"`
	Name          string `dynamodbav:"name"`
	Unit          string `dynamodbav:"unit,omitempty"`
	Operator      string `dynamodbav:"operator,omitempty"`
	Limit         string `dynamodbav:"limit,omitempty"`
	MeasuredValue string `dynamodbav:"measured_value,omitempty"`
	Conformity    string `dynamodbav:"conformity,omitempty"`
}

type snapshotItem struct {
	Mode              string `dynamodbav:"mode"`
	StandardID        string `dynamodbav:"standard_id,omitempty"`
	Name              string `dynamodbav:"name,omitempty"`
	Manufacturer      string `dynamodbav:"manufacturer,omitempty"`
	Model             string `dynamodbav:"model,omitempty"`
	SerialNumber      string `dynamodbav:"serial_number,omitempty"`
	CalibrationLab    string `dynamodbav:"calibration_lab,omitempty"`
	CertificateNumber string `dynamodbav:"certificate_number,omitempty"`
	CalibrationDate   string `dynamodbav:"calibration_date,omitempty"`
	ExpiryDate        string `dynamodbav:"expiry_date,omitempty"`
	Description       string `dynamodbav:"description,omitempty"`
	CapturedAt        string `dynamodbav:"captured_at,omitempty"`
}

type testExecutionItem struct {
	ID               string          `dynamodbav:"id"`
	TenantID         string          `dynamodbav:"tenant_id"`
	EquipmentID      string          `dynamodbav:"equipment_id"`
	OrderID          string          `dynamodbav:"order_id"`
	ProfileID        string          `dynamodbav:"profile_id"`
	TechnicianID     string          `dynamodbav:"technician_id,omitempty"`
	TestDate         string          `dynamodbav:"test_date"`
	ApplicableNorm   string          `dynamodbav:"applicable_norm"`
	StandardSnapshot snapshotItem    `dynamodbav:"standard_snapshot"`
	Points           []testPointItem `dynamodbav:"points"`
	OverallResult    string          `dynamodbav:"overall_result"`
	Notes            string          `dynamodbav:"notes,omitempty"`
	CreatedAt        string          `dynamodbav:"created_at"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// TestExecutionDynamoRepository persists test executions.
//
// Table requirements:
//   - PK: id (string, UUIDv7)
//   - GSI: order_id-index (PK: order_id, SK: id)
//
// Save is a plain PutItem: the last write for an id wins.

type TestExecutionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITestExecutionRepository = (*TestExecutionDynamoRepository)(nil)

func NewTestExecutionDynamoRepository(ddb DynamoAPI, tableName string) *TestExecutionDynamoRepository {
	return &TestExecutionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultExecutionsTableName),
	}
}

func (r *TestExecutionDynamoRepository) Save(ctx context.Context, e entities.TestExecution) (entities.TestExecution, error) {
	av, err := attributevalue.MarshalMap(toTestExecutionItem(e))
	if err != nil {
		return entities.TestExecution{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TestExecution{}, err
	}
	return e, nil
}

func (r *TestExecutionDynamoRepository) GetByID(ctx context.Context, id string) (entities.TestExecution, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TestExecution{}, err
	}
	if len(out.Item) == 0 {
		return entities.TestExecution{}, nil
	}

	var it testExecutionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TestExecution{}, err
	}
	return fromTestExecutionItem(it), nil
}

// ListByOrderID returns the executions of an order, newest id first.
func (r *TestExecutionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.TestExecution, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(executionsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.TestExecution, 0, len(raw))
	for _, item := range raw {
		var it testExecutionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromTestExecutionItem(it))
	}
	return out, nil
}

func toTestExecutionItem(e entities.TestExecution) testExecutionItem {
	points := make([]testPointItem, 0, len(e.Points))
	for _, p := range e.Points {
		points = append(points, testPointItem{
			ParameterID:   p.ParameterID,
			Kind:          string(p.Kind),
			Name:          p.Name,
			Unit:          p.Unit,
			Operator:      p.Operator,
			Limit:         floatPtrToString(p.Limit),
			MeasuredValue: p.MeasuredValue,
			Conformity:    conformityToString(p.Conformity),
		})
	}
	s := e.StandardSnapshot
	return testExecutionItem{
		ID:             e.ID,
		TenantID:       e.TenantID,
		EquipmentID:    e.EquipmentID,
		OrderID:        e.OrderID,
		ProfileID:      e.ProfileID,
		TechnicianID:   e.TechnicianID,
		TestDate:       formatTime(e.TestDate),
		ApplicableNorm: e.ApplicableNorm,
		StandardSnapshot: snapshotItem{
			Mode:              string(s.Mode),
			StandardID:        s.StandardID,
			Name:              s.Name,
			Manufacturer:      s.Manufacturer,
			Model:             s.Model,
			SerialNumber:      s.SerialNumber,
			CalibrationLab:    s.CalibrationLab,
			CertificateNumber: s.CertificateNumber,
			CalibrationDate:   formatTimePtr(s.CalibrationDate),
			ExpiryDate:        formatTimePtr(s.ExpiryDate),
			Description:       s.Description,
			CapturedAt:        formatTime(s.CapturedAt),
		},
		Points:        points,
		OverallResult: string(e.OverallResult),
		Notes:         e.Notes,
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}
}

func fromTestExecutionItem(it testExecutionItem) entities.TestExecution {
	points := make([]entities.TestPoint, 0, len(it.Points))
	for _, p := range it.Points {
		points = append(points, entities.TestPoint{
			ParameterID:   p.ParameterID,
			Kind:          entities.ParameterKindName(p.Kind),
			Name:          p.Name,
			Unit:          p.Unit,
			Operator:      p.Operator,
			Limit:         stringToFloatPtr(p.Limit),
			MeasuredValue: p.MeasuredValue,
			Conformity:    stringToConformity(p.Conformity),
		})
	}
	s := it.StandardSnapshot
	return entities.TestExecution{
		ID:             it.ID,
		TenantID:       it.TenantID,
		EquipmentID:    it.EquipmentID,
		OrderID:        it.OrderID,
		ProfileID:      it.ProfileID,
		TechnicianID:   it.TechnicianID,
		TestDate:       parseTime(it.TestDate),
		ApplicableNorm: it.ApplicableNorm,
		StandardSnapshot: entities.StandardSnapshot{
			Mode:              entities.SnapshotMode(s.Mode),
			StandardID:        s.StandardID,
			Name:              s.Name,
			Manufacturer:      s.Manufacturer,
			Model:             s.Model,
			SerialNumber:      s.SerialNumber,
			CalibrationLab:    s.CalibrationLab,
			CertificateNumber: s.CertificateNumber,
			CalibrationDate:   parseTimePtr(s.CalibrationDate),
			ExpiryDate:        parseTimePtr(s.ExpiryDate),
			Description:       s.Description,
			CapturedAt:        parseTime(s.CapturedAt),
		},
		Points:        points,
		OverallResult: entities.OverallResult(it.OverallResult),
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func conformityToString(c *bool) string {
	switch {
	case c == nil:
		return conformityPending
	case *c:
		return conformityTrue
	default:
		return conformityFalse
	}
}

func stringToConformity(s string) *bool {
	var v bool
	switch s {
	case conformityTrue:
		v = true
	case conformityFalse:
		v = false
	default:
		return nil
	}
	return &v
}
