// SPDX-License-Identifier: MIT
package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Sink stores rendered palette files
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
	Describe(name string) string
}

// FileSink writes files below Root
type FileSink struct {
	Root string
}

func (f FileSink) target(name string) string {
	return filepath.Join(f.Root, filepath.FromSlash(name))
}

// Write creates parent directories as needed
func (f FileSink) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := f.target(name)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

func (f FileSink) Describe(name string) string {
	if rel, err := filepath.Rel(f.Root, f.target(name)); err == nil {
		return rel
	}
	return f.target(name)
}

// PutObjectAPI is the part of the S3 client the sink needs
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads files to a bucket under an optional key prefix
type S3Sink struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

// NewS3Sink builds a sink using the default AWS credential chain
func NewS3Sink(ctx context.Context, bucket, prefix string) (*S3Sink, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Sink{Client: s3.NewFromConfig(cfg), Bucket: bucket, Prefix: prefix}, nil
}

func (s *S3Sink) key(name string) string {
	return strings.TrimPrefix(path.Join(s.Prefix, name), "/")
}

func (s *S3Sink) Write(ctx context.Context, name string, data []byte) error {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(s.key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.Describe(name), err)
	}
	return nil
}

func (s *S3Sink) Describe(name string) string {
	return "s3://" + s.Bucket + "/" + s.key(name)
}

func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return "application/json"
	case ".ts":
		return "application/typescript"
	default:
		return "text/javascript"
	}
}
