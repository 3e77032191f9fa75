package repository

import (
	"context"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReviewsTableName = "reviews"
	reviewsReviewedIDIndex  = "reviewed_id-index"
	reviewsReviewerIDIndex  = "reviewer_id-index"
)

type reviewItem struct {
	ID string `dynamodbav:"id"`

	ReviewerID   string `dynamodbav:"reviewer_id"`
	ReviewerName string `dynamodbav:"reviewer_name"`
	ReviewerRole string `dynamodbav:"reviewer_role"`

	ReviewedID   string `dynamodbav:"reviewed_id"`
	ReviewedName string `dynamodbav:"reviewed_name"`
	ReviewedRole string `dynamodbav:"reviewed_role"`

	Rating  int    `dynamodbav:"rating"`
	Comment string `dynamodbav:"comment"`

	ProposalID    string `dynamodbav:"proposal_id"`
	ProposalTitle string `dynamodbav:"proposal_title"`
	VerifiedWork  bool   `dynamodbav:"verified_work"`

	CreatedAt string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reviewed_id-index (PK: reviewed_id, SK: created_at)
//   - GSI: reviewer_id-index (PK: reviewer_id, SK: created_at)
//
// The (reviewer_id, proposal_id) uniqueness rule is enforced by the
// use case with ExistsForProposal before Create; the check and the
// insert are two round trips, matching the reference behavior.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	it := toReviewItem(rv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Review{}, err
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
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) GetByID(ctx context.Context, id string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) ListByReviewedID(ctx context.Context, reviewedID string) ([]entities.Review, error) {
	return r.queryIndex(ctx, reviewsReviewedIDIndex, "reviewed_id", reviewedID)
}

func (r *ReviewDynamoRepository) ListByReviewerID(ctx context.Context, reviewerID string) ([]entities.Review, error) {
	return r.queryIndex(ctx, reviewsReviewerIDIndex, "reviewer_id", reviewerID)
}

func (r *ReviewDynamoRepository) ExistsForProposal(ctx context.Context, reviewerID, proposalID string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsReviewerIDIndex),
		KeyConditionExpression: aws.String("reviewer_id = :rid"),
		FilterExpression:       aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: reviewerID},
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func (r *ReviewDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Review, error) {
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
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReviewItem(it))
	}
	return items, nil
}

func toReviewItem(rv entities.Review) reviewItem {
	return reviewItem{
		ID:            rv.ID,
		ReviewerID:    rv.ReviewerID,
		ReviewerName:  rv.ReviewerName,
		ReviewerRole:  string(rv.ReviewerRole),
		ReviewedID:    rv.ReviewedID,
		ReviewedName:  rv.ReviewedName,
		ReviewedRole:  string(rv.ReviewedRole),
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		ProposalID:    rv.ProposalID,
		ProposalTitle: rv.ProposalTitle,
		VerifiedWork:  rv.VerifiedWork,
		CreatedAt:     formatTime(rv.CreatedAt),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		ID:            it.ID,
		ReviewerID:    it.ReviewerID,
		ReviewerName:  it.ReviewerName,
		ReviewerRole:  entities.Role(it.ReviewerRole),
		ReviewedID:    it.ReviewedID,
		ReviewedName:  it.ReviewedName,
		ReviewedRole:  entities.Role(it.ReviewedRole),
		Rating:        it.Rating,
		Comment:       it.Comment,
		ProposalID:    it.ProposalID,
		ProposalTitle: it.ProposalTitle,
		VerifiedWork:  it.VerifiedWork,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
