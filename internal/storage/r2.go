package storage

import (
	"context"
	"log"
	"os"
	"time"

	appconfig "recovery-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Mirror keeps an off-site copy of uploaded case documents in
// Cloudflare R2. Mirroring is best-effort: a failed upload is logged
// and the local copy stays authoritative.
type R2Mirror struct {
	client *s3.Client
	bucket string
}

// NewR2Mirror returns nil when R2 is not configured.
func NewR2Mirror(cfg *appconfig.Config) *R2Mirror {
	if !cfg.R2Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKey,
			cfg.R2.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.R2.Region),
	)
	if err != nil {
		log.Printf("[R2] Failed to configure client, mirroring disabled: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.R2.Endpoint)
	})
	return &R2Mirror{client: client, bucket: cfg.R2.Bucket}
}

// Upload copies a stored file to R2 under documents/{filename}.
func (m *R2Mirror) Upload(filename, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[R2] Cannot open %s for mirroring: %v", filename, err)
		return
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String("documents/" + filename),
		Body:   f,
	})
	if err != nil {
		log.Printf("[R2] Mirror of %s failed: %v", filename, err)
		return
	}
	log.Printf("[R2] Mirrored %s", filename)
}
