package dynamorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mrled/suns/roster/internal/model"
)

// API is the subset of the DynamoDB client used by DynamoRepository
type API interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoRepository is a DynamoDB implementation of StudentRepository
type DynamoRepository struct {
	client           API
	tableName        string
	rejectDuplicates bool
}

// NewDynamoRepository creates a new DynamoDB-backed repository
func NewDynamoRepository(client API, tableName string, rejectDuplicateRolls bool) *DynamoRepository {
	return &DynamoRepository{
		client:           client,
		tableName:        tableName,
		rejectDuplicates: rejectDuplicateRolls,
	}
}

func (r *DynamoRepository) queryInput() *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: partitionKey},
		},
		ScanIndexForward: aws.Bool(true),
	}
}

// list reads every item of the partition in sort key order
func (r *DynamoRepository) list(ctx context.Context) ([]*StudentDTO, error) {
	var dtos []*StudentDTO

	paginator := dynamodb.NewQueryPaginator(r.client, r.queryInput())
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query students: %w", err)
		}

		var pageDTOs []*StudentDTO
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageDTOs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal students: %w", err)
		}
		dtos = append(dtos, pageDTOs...)
	}

	return dtos, nil
}

// findDTO returns the first item whose roll matches, or nil
func (r *DynamoRepository) findDTO(ctx context.Context, roll string) (*StudentDTO, error) {
	dtos, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, dto := range dtos {
		if dto.ToDomain().MatchesRoll(roll) {
			return dto, nil
		}
	}
	return nil, nil
}

// nextSeq returns one past the highest sequence number in the table
func (r *DynamoRepository) nextSeq(ctx context.Context) (uint64, error) {
	input := r.queryInput()
	input.ScanIndexForward = aws.Bool(false)
	input.Limit = aws.Int32(1)

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to query last student: %w", err)
	}
	if len(result.Items) == 0 {
		return 1, nil
	}

	var last StudentDTO
	if err := attributevalue.UnmarshalMap(result.Items[0], &last); err != nil {
		return 0, fmt.Errorf("failed to unmarshal last student: %w", err)
	}
	seq, err := parseSeq(last.SK)
	if err != nil {
		return 0, err
	}
	return seq + 1, nil
}

// Add stores a student after the last one in the table
func (r *DynamoRepository) Add(ctx context.Context, s model.Student) (model.WriteResult, error) {
	if r.rejectDuplicates {
		existing, err := r.findDTO(ctx, s.Roll)
		if err != nil {
			return model.WriteResult{}, err
		}
		if existing != nil {
			return model.WriteResult{}, fmt.Errorf("%w: %s", model.ErrAlreadyExists, s.Roll)
		}
	}

	seq, err := r.nextSeq(ctx)
	if err != nil {
		return model.WriteResult{}, err
	}

	item, err := attributevalue.MarshalMap(FromDomain(s, seq))
	if err != nil {
		return model.WriteResult{}, fmt.Errorf("failed to marshal student: %w", err)
	}

	// The sequence number must be fresh; a collision means another writer got there first
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(sk)"),
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return model.WriteResult{}, fmt.Errorf("sequence number %d already taken: %w", seq, err)
		}
		return model.WriteResult{}, fmt.Errorf("failed to store student: %w", err)
	}

	return model.WriteResult{Changed: true}, nil
}

// Remove deletes the first student whose roll matches
func (r *DynamoRepository) Remove(ctx context.Context, roll string) (model.WriteResult, error) {
	dto, err := r.findDTO(ctx, roll)
	if err != nil {
		return model.WriteResult{}, err
	}
	if dto == nil {
		return model.WriteResult{}, nil
	}

	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: dto.PK},
			"sk": &types.AttributeValueMemberS{Value: dto.SK},
		},
	})
	if err != nil {
		return model.WriteResult{}, fmt.Errorf("failed to delete student: %w", err)
	}

	return model.WriteResult{Changed: true}, nil
}

// Find retrieves the first student whose roll matches
func (r *DynamoRepository) Find(ctx context.Context, roll string) (model.Student, error) {
	dto, err := r.findDTO(ctx, roll)
	if err != nil {
		return model.Student{}, err
	}
	if dto == nil {
		return model.Student{}, model.ErrNotFound
	}
	return dto.ToDomain(), nil
}

// All retrieves every student in insertion order
func (r *DynamoRepository) All(ctx context.Context) ([]model.Student, error) {
	dtos, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	return ToDomainList(dtos), nil
}

var _ model.StudentRepository = (*DynamoRepository)(nil)
