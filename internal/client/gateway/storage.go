package gateway

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/healthtrack/internal/common"
)

// maxUploadSize is the client-side cap on document uploads.
const maxUploadSize = 10 << 20 // 10 MiB

// Test seams for the S3 client, so transport tests can count invocations
// without real credentials.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// validateUpload enforces the client-side constraints: PDF or TXT only,
// at most 10 MiB. Violations never reach the network.
func validateUpload(name, mimeType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	typeOK := ext == ".pdf" || ext == ".txt" ||
		mimeType == "application/pdf" || mimeType == "text/plain"
	if !typeOK {
		return fmt.Errorf("%w: only PDF and TXT files are allowed", common.ErrValidation)
	}
	if size > maxUploadSize {
		return fmt.Errorf("%w: file exceeds the 10 MiB limit", common.ErrValidation)
	}
	if size == 0 {
		return fmt.Errorf("%w: file is empty", common.ErrValidation)
	}
	return nil
}

func storageKey(name string) string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%s-%s", d.Year(), d.Month(), d.Day(), uuid.New(), name)
}

func (g *Gateway) s3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(g.cfg.S3Region),
		awsconfig.WithCredentialsProvider(awscreds.NewStaticCredentialsProvider(
			g.cfg.S3AccessKey,
			g.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(g.cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// UploadBlob validates the payload, then stores it in the object store
// and returns the public URL of the blob. A missing session fails before
// any network activity, same as the record operations.
func (g *Gateway) UploadBlob(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	if err := validateUpload(name, mimeType, int64(len(data))); err != nil {
		return "", err
	}
	if len(g.tokens.AuthHeader()) == 0 {
		return "", common.ErrUnauthenticated
	}

	client, err := g.s3Client(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpload, err)
	}

	key := storageKey(name)
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.cfg.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpload, err)
	}

	return g.publicURL(key), nil
}

func (g *Gateway) publicURL(key string) string {
	base := g.cfg.StoragePublicURL
	if base == "" {
		base = g.cfg.S3BaseEndpoint
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), g.cfg.S3Bucket, key)
}

// PresignDownload returns a short-lived GET URL for a stored blob, for
// buckets that are not publicly readable.
func (g *Gateway) PresignDownload(ctx context.Context, key string) (string, error) {
	if len(g.tokens.AuthHeader()) == 0 {
		return "", common.ErrUnauthenticated
	}

	client, err := g.s3Client(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.cfg.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
