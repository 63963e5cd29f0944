package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"careerguide/internal/models"
)

// dynamoAccount is the item shape of the Users / AdminUsers tables.
type dynamoAccount struct {
	Username     string `dynamodbav:"username"`
	PasswordHash string `dynamodbav:"password_hash"`
}

// DynamoAccountStore backs the account contract with a DynamoDB table keyed
// by username.
type DynamoAccountStore struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoAccountStore creates an account store over the given table.
func NewDynamoAccountStore(client *dynamodb.Client, table string) *DynamoAccountStore {
	return &DynamoAccountStore{client: client, table: table}
}

func usernameKey(username string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"username": &types.AttributeValueMemberS{Value: username},
	}
}

// Exists reports whether the username is taken.
func (s *DynamoAccountStore) Exists(ctx context.Context, username string) (bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       usernameKey(username),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

// Create inserts the credential. The conditional put makes check-then-insert
// atomic on the table side.
func (s *DynamoAccountStore) Create(ctx context.Context, username, secret string) error {
	item, err := attributevalue.MarshalMap(dynamoAccount{
		Username:     username,
		PasswordHash: secret,
	})
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(username)"),
	})
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return ErrDuplicateUser
	}
	return err
}

// Get returns the stored secret.
func (s *DynamoAccountStore) Get(ctx context.Context, username string) (string, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       usernameKey(username),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", ErrUserNotFound
	}

	var account dynamoAccount
	if err := attributevalue.UnmarshalMap(out.Item, &account); err != nil {
		return "", err
	}
	return account.PasswordHash, nil
}

// Count scans the table for its item count. Fine at this scale; these tables
// hold at most a few thousand rows.
func (s *DynamoAccountStore) Count(ctx context.Context) (int, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

// dynamoProject is the item shape of the Projects table.
type dynamoProject struct {
	ID               string `dynamodbav:"id"`
	Title            string `dynamodbav:"title"`
	ProblemStatement string `dynamodbav:"problem_statement"`
	SolutionOverview string `dynamodbav:"solution_overview"`
	ImageRef         string `dynamodbav:"image"`
	DocumentRef      string `dynamodbav:"document"`
}

// DynamoProjectStore persists projects in a DynamoDB table keyed by id.
type DynamoProjectStore struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoProjectStore creates a project store over the given table.
func NewDynamoProjectStore(client *dynamodb.Client, table string) *DynamoProjectStore {
	return &DynamoProjectStore{client: client, table: table}
}

// Put stores a project.
func (s *DynamoProjectStore) Put(ctx context.Context, project models.Project) error {
	item, err := attributevalue.MarshalMap(dynamoProject{
		ID:               project.ID,
		Title:            project.Title,
		ProblemStatement: project.ProblemStatement,
		SolutionOverview: project.SolutionOverview,
		ImageRef:         project.ImageRef,
		DocumentRef:      project.DocumentRef,
	})
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	return err
}

// Get returns a project by id.
func (s *DynamoProjectStore) Get(ctx context.Context, id string) (*models.Project, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, ErrProjectNotFound
	}

	var p dynamoProject
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &models.Project{
		ID:               p.ID,
		Title:            p.Title,
		ProblemStatement: p.ProblemStatement,
		SolutionOverview: p.SolutionOverview,
		ImageRef:         p.ImageRef,
		DocumentRef:      p.DocumentRef,
	}, nil
}

// List scans the whole table.
func (s *DynamoProjectStore) List(ctx context.Context) ([]models.Project, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, err
	}

	var items []dynamoProject
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(items))
	for _, p := range items {
		projects = append(projects, models.Project{
			ID:               p.ID,
			Title:            p.Title,
			ProblemStatement: p.ProblemStatement,
			SolutionOverview: p.SolutionOverview,
			ImageRef:         p.ImageRef,
			DocumentRef:      p.DocumentRef,
		})
	}
	return projects, nil
}

// Count scans the table for its item count.
func (s *DynamoProjectStore) Count(ctx context.Context) (int, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

// dynamoEnrollment is the item shape of the Enrollments table.
type dynamoEnrollment struct {
	Username   string   `dynamodbav:"username"`
	ProjectIDs []string `dynamodbav:"project_ids"`
}

// DynamoEnrollmentStore keeps one item per user with the list of joined
// project ids.
type DynamoEnrollmentStore struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoEnrollmentStore creates an enrollment store over the given table.
func NewDynamoEnrollmentStore(client *dynamodb.Client, table string) *DynamoEnrollmentStore {
	return &DynamoEnrollmentStore{client: client, table: table}
}

// Enroll appends the project id unless already present. Read-modify-write
// with last-write-wins, matching the contract this store promises.
func (s *DynamoEnrollmentStore) Enroll(ctx context.Context, username, projectID string) (bool, error) {
	record, err := s.Get(ctx, username)
	if err != nil {
		return false, err
	}
	for _, id := range record.ProjectIDs {
		if id == projectID {
			return false, nil
		}
	}

	item, err := attributevalue.MarshalMap(dynamoEnrollment{
		Username:   username,
		ProjectIDs: append(record.ProjectIDs, projectID),
	})
	if err != nil {
		return false, err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the user's enrollment record; an empty record if none exists.
func (s *DynamoEnrollmentStore) Get(ctx context.Context, username string) (*models.Enrollment, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       usernameKey(username),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return &models.Enrollment{Username: username}, nil
	}

	var record dynamoEnrollment
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, err
	}
	return &models.Enrollment{Username: record.Username, ProjectIDs: record.ProjectIDs}, nil
}

// All scans the whole table.
func (s *DynamoEnrollmentStore) All(ctx context.Context) ([]models.Enrollment, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, err
	}

	var items []dynamoEnrollment
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	all := make([]models.Enrollment, 0, len(items))
	for _, record := range items {
		all = append(all, models.Enrollment{Username: record.Username, ProjectIDs: record.ProjectIDs})
	}
	return all, nil
}

// Count scans the table for its item count.
func (s *DynamoEnrollmentStore) Count(ctx context.Context) (int, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}
