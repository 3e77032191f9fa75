package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName  = "proposals"
	proposalsClientIDIndex     = "client_id-index"
	proposalsTechnicianIDIndex = "technician_id-index"
	proposalsPublicationIndex  = "publication_id-index"
)

type proposalItem struct {
	ID          string   `dynamodbav:"id"`
	Title       string   `dynamodbav:"title"`
	Description string   `dynamodbav:"description"`
	Budget      string   `dynamodbav:"budget"`
	Images      []string `dynamodbav:"images,omitempty"`

	ClientID    string `dynamodbav:"client_id"`
	ClientName  string `dynamodbav:"client_name"`
	ClientEmail string `dynamodbav:"client_email"`
	ClientPhone string `dynamodbav:"client_phone,omitempty"`

	TechnicianID    string `dynamodbav:"technician_id"`
	TechnicianName  string `dynamodbav:"technician_name"`
	TechnicianEmail string `dynamodbav:"technician_email"`
	TechnicianPhone string `dynamodbav:"technician_phone,omitempty"`

	PublicationID    string `dynamodbav:"publication_id,omitempty"`
	PublicationTitle string `dynamodbav:"publication_title,omitempty"`

	Status            string `dynamodbav:"status"`
	CreatedBy         string `dynamodbav:"created_by"`
	RejectionFeedback string `dynamodbav:"rejection_feedback,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id, SK: created_at)
//   - GSI: technician_id-index (PK: technician_id, SK: created_at)
//   - GSI: publication_id-index (PK: publication_id, SK: created_at)
//
// Status transitions use a conditional update guarded on the stored
// status still being "pending", which makes terminal states absorbing
// at the storage layer regardless of concurrent responders.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Proposal, error) {
	return r.queryIndex(ctx, proposalsClientIDIndex, "client_id", clientID)
}

func (r *ProposalDynamoRepository) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Proposal, error) {
	return r.queryIndex(ctx, proposalsTechnicianIDIndex, "technician_id", technicianID)
}

func (r *ProposalDynamoRepository) ListByPublicationID(ctx context.Context, publicationID string) ([]entities.Proposal, error) {
	return r.queryIndex(ctx, proposalsPublicationIndex, "publication_id", publicationID)
}

// UpdateStatus applies a lifecycle transition. The write only succeeds
// while the stored status is still pending; when the condition fails
// the zero value is returned so the use case can report the precise
// error after re-reading.
func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus, rejectionFeedback string) (entities.Proposal, error) {
	now := formatTime(time.Now())

	expr := "SET #status = :status, #updated_at = :now, #responded_at = :now"
	values := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: string(status)},
		":now":     &types.AttributeValueMemberS{Value: now},
		":pending": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusPending)},
	}
	names := map[string]string{
		"#status":       "status",
		"#updated_at":   "updated_at",
		"#responded_at": "responded_at",
	}
	if rejectionFeedback != "" {
		expr += ", #rejection_feedback = :feedback"
		values[":feedback"] = &types.AttributeValueMemberS{Value: rejectionFeedback}
		names["#rejection_feedback"] = "rejection_feedback"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		// created_at is the range key on every GSI; newest first.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Budget:      floatToString(p.Budget),
		Images:      p.Images,

		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		ClientEmail: p.ClientEmail,
		ClientPhone: p.ClientPhone,

		TechnicianID:    p.TechnicianID,
		TechnicianName:  p.TechnicianName,
		TechnicianEmail: p.TechnicianEmail,
		TechnicianPhone: p.TechnicianPhone,

		PublicationID:    p.PublicationID,
		PublicationTitle: p.PublicationTitle,

		Status:            string(p.Status),
		CreatedBy:         string(p.CreatedBy),
		RejectionFeedback: p.RejectionFeedback,

		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
	if p.RespondedAt != nil {
		it.RespondedAt = formatTime(*p.RespondedAt)
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	budget, _ := strconv.ParseFloat(it.Budget, 64)
	return entities.Proposal{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Budget:      budget,
		Images:      it.Images,

		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		ClientPhone: it.ClientPhone,

		TechnicianID:    it.TechnicianID,
		TechnicianName:  it.TechnicianName,
		TechnicianEmail: it.TechnicianEmail,
		TechnicianPhone: it.TechnicianPhone,

		PublicationID:    it.PublicationID,
		PublicationTitle: it.PublicationTitle,

		Status:            entities.ProposalStatus(it.Status),
		CreatedBy:         entities.Role(it.CreatedBy),
		RejectionFeedback: it.RejectionFeedback,

		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
		RespondedAt: parseTimePtr(it.RespondedAt),
	}
}
