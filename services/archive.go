package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// Archiver stores raw scrape output so extraction runs can be replayed and
// audited. Archiving is best-effort: pipeline callers log failures and move
// on.
type Archiver interface {
	ArchiveScrape(ctx context.Context, workspaceID, sourceID string, content string) error
}

// S3Archiver writes scrape snapshots to an S3 bucket under
// scrapes/<workspace>/<source>/<timestamp>.txt.
type S3Archiver struct {
	client *s3.Client
	bucket string
}

func NewS3Archiver(ctx context.Context, bucket string) (*S3Archiver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &S3Archiver{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (a *S3Archiver) ArchiveScrape(ctx context.Context, workspaceID, sourceID string, content string) error {
	key := fmt.Sprintf("scrapes/%s/%s/%d.txt", workspaceID, sourceID, time.Now().UnixMilli())
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader([]byte(content)),
	})
	if err != nil {
		return fmt.Errorf("uploading scrape snapshot to s3://%s/%s: %w", a.bucket, key, err)
	}
	log.Debug().Str("bucket", a.bucket).Str("key", key).Int("chars", len(content)).Msg("Archived scrape snapshot")
	return nil
}

// NoopArchiver is used when no archive bucket is configured.
type NoopArchiver struct{}

func (NoopArchiver) ArchiveScrape(context.Context, string, string, string) error {
	return nil
}
