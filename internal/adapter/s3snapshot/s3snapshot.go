package s3snapshot

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mrled/suns/roster/internal/model"
)

// API is the subset of the S3 client used by Snapshot
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Snapshot stores a copy of the roster in one S3 object, in the backing-file format
type Snapshot struct {
	s3Client    API
	bucketName  string
	key         string
	contentType string
	log         *slog.Logger
}

// New creates a new Snapshot adapter
func New(s3Client API, bucketName, key string, log *slog.Logger) *Snapshot {
	if log == nil {
		log = slog.Default()
	}
	return &Snapshot{
		s3Client:    s3Client,
		bucketName:  bucketName,
		key:         key,
		contentType: "text/plain; charset=utf-8",
		log:         log,
	}
}

// Load downloads the snapshot and parses it. Malformed lines are skipped.
func (s *Snapshot) Load(ctx context.Context) ([]model.Student, error) {
	result, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	students, err := model.ReadLines(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	s.log.Info("Loaded roster snapshot",
		slog.String("bucket", s.bucketName),
		slog.String("key", s.key),
		slog.Int("student_count", len(students)))
	return students, nil
}

// Save uploads the students, replacing any existing snapshot
func (s *Snapshot) Save(ctx context.Context, students []model.Student) error {
	var buf bytes.Buffer
	if err := model.WriteLines(&buf, students); err != nil {
		return fmt.Errorf("failed to encode students: %w", err)
	}

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(s.contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	s.log.Info("Saved roster snapshot",
		slog.String("bucket", s.bucketName),
		slog.String("key", s.key),
		slog.Int("student_count", len(students)))
	return nil
}
