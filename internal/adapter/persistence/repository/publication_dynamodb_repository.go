package repository

import (
	"context"
	"sort"
	"strconv"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPublicationsTableName = "publications"
	publicationsTypeIndex        = "type-index"
	publicationsAuthorIDIndex    = "author_id-index"
)

type publicationItem struct {
	ID          string   `dynamodbav:"id"`
	Type        string   `dynamodbav:"type"`
	AuthorID    string   `dynamodbav:"author_id"`
	AuthorName  string   `dynamodbav:"author_name"`
	AuthorRole  string   `dynamodbav:"author_role"`
	Title       string   `dynamodbav:"title"`
	Description string   `dynamodbav:"description"`
	Budget      string   `dynamodbav:"budget,omitempty"`
	ImageURLs   []string `dynamodbav:"image_urls,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

// PublicationDynamoRepository persists Publication entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: type-index (PK: type, SK: created_at)
//   - GSI: author_id-index (PK: author_id, SK: created_at)
//
// ListAll uses a bounded Scan; the full feed is only served to
// anonymous viewers and the table stays small in this market.

type PublicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPublicationRepository = (*PublicationDynamoRepository)(nil)

func NewPublicationDynamoRepository(ddb *dynamodb.Client) *PublicationDynamoRepository {
	return &PublicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PUBLICATIONS_TABLE", defaultPublicationsTableName),
	}
}

func (r *PublicationDynamoRepository) Create(ctx context.Context, p entities.Publication) (entities.Publication, error) {
	it := toPublicationItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Publication{}, err
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
		return entities.Publication{}, err
	}
	return p, nil
}

func (r *PublicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Publication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Publication{}, err
	}
	if len(out.Item) == 0 {
		return entities.Publication{}, nil
	}

	var it publicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Publication{}, err
	}
	return fromPublicationItem(it), nil
}

func (r *PublicationDynamoRepository) ListAll(ctx context.Context, limit int) ([]entities.Publication, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Publication, 0, len(out.Items))
	for _, raw := range out.Items {
		var it publicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPublicationItem(it))
	}
	// Scan has no order; sort newest first like the indexed listings.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *PublicationDynamoRepository) ListByType(ctx context.Context, t entities.PublicationType, limit int) ([]entities.Publication, error) {
	return r.queryIndex(ctx, publicationsTypeIndex, "type", string(t), limit)
}

func (r *PublicationDynamoRepository) ListByAuthorID(ctx context.Context, authorID string, limit int) ([]entities.Publication, error) {
	return r.queryIndex(ctx, publicationsAuthorIDIndex, "author_id", authorID, limit)
}

func (r *PublicationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PublicationDynamoRepository) queryIndex(ctx context.Context, index, key, value string, limit int) ([]entities.Publication, error) {
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
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Publication, 0, len(out.Items))
	for _, raw := range out.Items {
		var it publicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPublicationItem(it))
	}
	return items, nil
}

func toPublicationItem(p entities.Publication) publicationItem {
	it := publicationItem{
		ID:          p.ID,
		Type:        string(p.Type),
		AuthorID:    p.AuthorID,
		AuthorName:  p.AuthorName,
		AuthorRole:  string(p.AuthorRole),
		Title:       p.Title,
		Description: p.Description,
		ImageURLs:   p.ImageURLs,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
	if p.Budget != nil {
		it.Budget = floatToString(*p.Budget)
	}
	return it
}

func fromPublicationItem(it publicationItem) entities.Publication {
	p := entities.Publication{
		ID:          it.ID,
		Type:        entities.PublicationType(it.Type),
		AuthorID:    it.AuthorID,
		AuthorName:  it.AuthorName,
		AuthorRole:  entities.Role(it.AuthorRole),
		Title:       it.Title,
		Description: it.Description,
		ImageURLs:   it.ImageURLs,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	if it.Budget != "" {
		if b, err := strconv.ParseFloat(it.Budget, 64); err == nil {
			p.Budget = &b
		}
	}
	return p
}
