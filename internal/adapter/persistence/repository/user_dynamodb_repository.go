package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersRoleIndex        = "role-index"
)

type userItem struct {
	ID          string `dynamodbav:"id"`
	DisplayName string `dynamodbav:"display_name,omitempty"`
	FullName    string `dynamodbav:"full_name,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	PhoneNumber string `dynamodbav:"phone_number,omitempty"`
	DPI         string `dynamodbav:"dpi,omitempty"`
	PhotoURL    string `dynamodbav:"photo_url,omitempty"`

	Role             string `dynamodbav:"role,omitempty"`
	OnboardingStatus string `dynamodbav:"onboarding_status,omitempty"`

	Bio    string   `dynamodbav:"bio,omitempty"`
	Skills []string `dynamodbav:"skills,omitempty"`

	// Flat rating counters so ADD works on items that never had a
	// review (a missing top-level number is treated as zero).
	TotalReviews int `dynamodbav:"total_reviews,omitempty"`
	Rating1      int `dynamodbav:"rating_1,omitempty"`
	Rating2      int `dynamodbav:"rating_2,omitempty"`
	Rating3      int `dynamodbav:"rating_3,omitempty"`
	Rating4      int `dynamodbav:"rating_4,omitempty"`
	Rating5      int `dynamodbav:"rating_5,omitempty"`

	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
	OnboardingCompletedAt string `dynamodbav:"onboarding_completed_at,omitempty"`
}

// UserDynamoRepository persists UserProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: role-index (PK: role)
//
// The rating aggregate lives on the user item as flat per-star
// counters plus a total. IncrementRating updates them with a single
// atomic ADD, so two concurrent reviews can never lose an increment.
// The average is never stored; it is derived from the counters when
// the item is read.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error) {
	it := toUserItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.UserProfile{}, err
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
		return entities.UserProfile{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) CompleteOnboarding(ctx context.Context, id string, role entities.Role, fullName, phoneNumber, dpi string) (entities.UserProfile, error) {
	now := formatTime(time.Now())
	return r.update(ctx, id,
		"SET #role = :role, #full_name = :full_name, #phone_number = :phone_number, #dpi = :dpi, "+
			"#onboarding_status = :completed, #onboarding_completed_at = :now, #updated_at = :now",
		map[string]types.AttributeValue{
			":role":         &types.AttributeValueMemberS{Value: string(role)},
			":full_name":    &types.AttributeValueMemberS{Value: fullName},
			":phone_number": &types.AttributeValueMemberS{Value: phoneNumber},
			":dpi":          &types.AttributeValueMemberS{Value: dpi},
			":completed":    &types.AttributeValueMemberS{Value: string(entities.OnboardingStatusCompleted)},
			":now":          &types.AttributeValueMemberS{Value: now},
		},
		map[string]string{
			"#role":                    "role",
			"#full_name":               "full_name",
			"#phone_number":            "phone_number",
			"#dpi":                     "dpi",
			"#onboarding_status":       "onboarding_status",
			"#onboarding_completed_at": "onboarding_completed_at",
			"#updated_at":              "updated_at",
		},
	)
}

func (r *UserDynamoRepository) UpdateProfile(ctx context.Context, id string, bio *string, skills []string) (entities.UserProfile, error) {
	now := formatTime(time.Now())

	expr := "SET #updated_at = :now"
	values := map[string]types.AttributeValue{
		":now": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}
	if bio != nil {
		expr += ", #bio = :bio"
		values[":bio"] = &types.AttributeValueMemberS{Value: *bio}
		names["#bio"] = "bio"
	}
	if skills != nil {
		expr += ", #skills = :skills"
		av, err := attributevalue.Marshal(skills)
		if err != nil {
			return entities.UserProfile{}, err
		}
		values[":skills"] = av
		names["#skills"] = "skills"
	}

	return r.update(ctx, id, expr, values, names)
}

// IncrementRating accounts one star rating atomically and returns the
// post-increment aggregate.
func (r *UserDynamoRepository) IncrementRating(ctx context.Context, id string, star int) (entities.RatingStats, error) {
	if star < entities.MinRating || star > entities.MaxRating {
		return entities.RatingStats{}, entities.ErrInvalidRating
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #star :one, #total :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#star":  fmt.Sprintf("rating_%d", star),
			"#total": "total_reviews",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.RatingStats{}, err
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RatingStats{}, err
	}
	return ratingStatsFromItem(it), nil
}

func (r *UserDynamoRepository) ListByRole(ctx context.Context, role entities.Role, limit int) ([]entities.UserProfile, error) {
	return r.queryRoleIndex(ctx, role, "", limit)
}

func (r *UserDynamoRepository) SearchBySkill(ctx context.Context, role entities.Role, skill string, limit int) ([]entities.UserProfile, error) {
	return r.queryRoleIndex(ctx, role, skill, limit)
}

func (r *UserDynamoRepository) queryRoleIndex(ctx context.Context, role entities.Role, skill string, limit int) ([]entities.UserProfile, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersRoleIndex),
		KeyConditionExpression: aws.String("#role = :role"),
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
		Limit: aws.Int32(int32(limit)),
	}
	if skill != "" {
		in.FilterExpression = aws.String("contains(#skills, :skill)")
		in.ExpressionAttributeNames["#skills"] = "skills"
		in.ExpressionAttributeValues[":skill"] = &types.AttributeValueMemberS{Value: skill}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.UserProfile, 0, len(out.Items))
	for _, raw := range out.Items {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUserItem(it))
	}
	return items, nil
}

func (r *UserDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.UserProfile, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.UserProfile{}, nil
		}
		return entities.UserProfile{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.UserProfile) userItem {
	stats := u.Rating.Normalize()
	it := userItem{
		ID:               u.ID,
		DisplayName:      u.DisplayName,
		FullName:         u.FullName,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		DPI:              u.DPI,
		PhotoURL:         u.PhotoURL,
		Role:             string(u.Role),
		OnboardingStatus: string(u.OnboardingStatus),
		Bio:              u.Bio,
		Skills:           u.Skills,
		TotalReviews:     stats.TotalReviews,
		Rating1:          stats.RatingsBreakdown[1],
		Rating2:          stats.RatingsBreakdown[2],
		Rating3:          stats.RatingsBreakdown[3],
		Rating4:          stats.RatingsBreakdown[4],
		Rating5:          stats.RatingsBreakdown[5],
		CreatedAt:        formatTime(u.CreatedAt),
		UpdatedAt:        formatTime(u.UpdatedAt),
	}
	if u.OnboardingCompletedAt != nil {
		it.OnboardingCompletedAt = formatTime(*u.OnboardingCompletedAt)
	}
	return it
}

func fromUserItem(it userItem) entities.UserProfile {
	return entities.UserProfile{
		ID:                    it.ID,
		DisplayName:           it.DisplayName,
		FullName:              it.FullName,
		Email:                 it.Email,
		PhoneNumber:           it.PhoneNumber,
		DPI:                   it.DPI,
		PhotoURL:              it.PhotoURL,
		Role:                  entities.Role(it.Role),
		OnboardingStatus:      entities.OnboardingStatus(it.OnboardingStatus),
		Bio:                   it.Bio,
		Skills:                it.Skills,
		Rating:                ratingStatsFromItem(it),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
		OnboardingCompletedAt: parseTimePtr(it.OnboardingCompletedAt),
	}
}

func ratingStatsFromItem(it userItem) entities.RatingStats {
	stats := entities.RatingStats{
		RatingsBreakdown: map[int]int{
			1: it.Rating1,
			2: it.Rating2,
			3: it.Rating3,
			4: it.Rating4,
			5: it.Rating5,
		},
	}
	return stats.Normalize()
}
