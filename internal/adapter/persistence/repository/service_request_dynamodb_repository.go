package repository

import (
	"context"

	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/database"
	"autoservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRequestsTableName = "requests"

type requestItem struct {
	ID              string      `dynamodbav:"id"`
	CustomerName    string      `dynamodbav:"customer_name"`
	Phone           string      `dynamodbav:"phone"`
	CarModel        string      `dynamodbav:"car_model"`
	CarYear         int         `dynamodbav:"car_year"`
	Issue           string      `dynamodbav:"issue"`
	Status          string      `dynamodbav:"status"`
	AssignedWorkers []string    `dynamodbav:"assigned_workers"`
	StartDateTime   string      `dynamodbav:"start_date_time"`
	EndDateTime     string      `dynamodbav:"end_date_time"`
	Difficulty      int         `dynamodbav:"difficulty"`
	Urgency         int         `dynamodbav:"urgency"`
	Shares          *sharesItem `dynamodbav:"shares,omitempty"`
	CreatedAt       string      `dynamodbav:"created_at"`
	UpdatedAt       string      `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists live service requests.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (string)
//
// Archived and canceled requests are moved out of this table by the atomic
// writer.
type ServiceRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb DynamoAPI, tableName string) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromRequestItem(it), nil
}

// List returns every live request when status is empty, otherwise the
// requests in that status.
func (r *ServiceRequestDynamoRepository) List(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error) {
	if status == "" {
		items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
			TableName:      aws.String(r.tableName),
			ConsistentRead: aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		return unmarshalRequests(items)
	}

	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.StatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequests(items)
}

func (r *ServiceRequestDynamoRepository) ListByWorker(ctx context.Context, workerID string) ([]entities.ServiceRequest, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("contains(#assigned, :worker_id)"),
		ExpressionAttributeNames: map[string]string{
			"#assigned": "assigned_workers",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":worker_id": &types.AttributeValueMemberS{Value: workerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequests(items)
}

func (r *ServiceRequestDynamoRepository) UpdateDetails(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	return r.update(ctx, req.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #customer_name = :customer_name, #phone = :phone, #car_model = :car_model, #car_year = :car_year, " +
			"#issue = :issue, #start = :start, #end = :end, #difficulty = :difficulty, #urgency = :urgency, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":customer_name": &types.AttributeValueMemberS{Value: req.CustomerName},
			":phone":         &types.AttributeValueMemberS{Value: req.Phone},
			":car_model":     &types.AttributeValueMemberS{Value: req.CarModel},
			":car_year":      intValue(req.CarYear),
			":issue":         &types.AttributeValueMemberS{Value: req.Issue},
			":start":         &types.AttributeValueMemberS{Value: formatTime(req.StartDateTime)},
			":end":           &types.AttributeValueMemberS{Value: formatTime(req.EndDateTime)},
			":difficulty":    intValue(req.Difficulty),
			":urgency":       intValue(req.Urgency),
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#customer_name": "customer_name",
			"#phone":         "phone",
			"#car_model":     "car_model",
			"#car_year":      "car_year",
			"#issue":         "issue",
			"#start":         "start_date_time",
			"#end":           "end_date_time",
			"#difficulty":    "difficulty",
			"#urgency":       "urgency",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceRequestDynamoRepository) UpdateAssignedWorkers(ctx context.Context, id string, workerIDs []string) (entities.ServiceRequest, error) {
	list, err := attributevalue.Marshal(nonNilStrings(workerIDs))
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #assigned = :assigned, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":assigned":   list,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#assigned":   "assigned_workers",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceRequestDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ServiceRequest, error) {
	updateExpr, values, names := build(nowString())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRequest{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromRequestItem(it), nil
}

func unmarshalRequests(items []map[string]types.AttributeValue) ([]entities.ServiceRequest, error) {
	var its []requestItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	res := make([]entities.ServiceRequest, 0, len(its))
	for _, it := range its {
		res = append(res, fromRequestItem(it))
	}
	return res, nil
}

func toRequestItem(r entities.ServiceRequest) requestItem {
	return requestItem{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		Phone:           r.Phone,
		CarModel:        r.CarModel,
		CarYear:         r.CarYear,
		Issue:           r.Issue,
		Status:          string(r.Status),
		AssignedWorkers: nonNilStrings(r.AssignedWorkers),
		StartDateTime:   formatTime(r.StartDateTime),
		EndDateTime:     formatTime(r.EndDateTime),
		Difficulty:      r.Difficulty,
		Urgency:         r.Urgency,
		Shares:          toSharesItem(r.Shares),
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		Phone:           it.Phone,
		CarModel:        it.CarModel,
		CarYear:         it.CarYear,
		Issue:           it.Issue,
		Status:          entities.RequestStatus(it.Status),
		AssignedWorkers: nonNilStrings(it.AssignedWorkers),
		StartDateTime:   parseTime(it.StartDateTime),
		EndDateTime:     parseTime(it.EndDateTime),
		Difficulty:      it.Difficulty,
		Urgency:         it.Urgency,
		Shares:          fromSharesItem(it.Shares),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
