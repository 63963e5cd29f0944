package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"careerguide/internal/config"
)

// sqliteSchema creates the embedded store tables on first open. User and
// admin credentials live in separate tables, matching the managed backend's
// table split.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	username      TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS admin_users (
	username      TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS projects (
	id                TEXT PRIMARY KEY,
	title             TEXT NOT NULL,
	problem_statement TEXT NOT NULL DEFAULT '',
	solution_overview TEXT NOT NULL DEFAULT '',
	image_ref         TEXT NOT NULL DEFAULT '',
	document_ref      TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS enrollments (
	username    TEXT PRIMARY KEY,
	project_ids TEXT NOT NULL DEFAULT '[]'
);`

// OpenSQLite opens (or creates) the embedded database and ensures the
// schema exists. Use ":memory:" for a throwaway database in tests.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Println("Successfully opened SQLite database")
	return db, nil
}

// NewRedisClient connects to Redis and verifies the connection with retries.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	maxRetries := 10
	var err error
	for i := 1; i <= maxRetries; i++ {
		err = client.Ping(ctx).Err()
		if err == nil {
			break
		}
		log.Printf("Waiting for Redis... (%d/%d)", i, maxRetries)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
	}

	log.Println("Successfully connected to Redis")
	return client, nil
}

// NewDynamoClient builds a DynamoDB client from the configured region and
// optional static credentials (the default chain is used when unset).
func NewDynamoClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

// NewSNSClient builds an SNS client for notification publishing.
func NewSNSClient(ctx context.Context, cfg *config.Config) (*sns.Client, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return sns.NewFromConfig(awsCfg), nil
}

func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("error creating aws config: %w", err)
	}
	return awsCfg, nil
}
