// Package archive exports fetched audit log entries to an S3-compatible
// bucket (AWS S3 or MinIO).
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrArchiveDisabled = errors.New("log archive is not configured")
	ErrNoOrganization  = errors.New("organization id is required")
	ErrNothingToUpload = errors.New("no log entries to archive")
)

// ObjectPutter is the part of *s3.Client the archiver uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}

	now         = time.Now
	newObjectID = uuid.NewString
)

// Config selects the bucket. An empty Bucket disables archiving. Endpoint
// is set for MinIO and other S3-compatible stores; AccessKey and SecretKey
// fall back to the default AWS credential chain when empty.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type Archiver struct {
	cfg Config
	log logging.Logger

	mu     sync.Mutex
	client ObjectPutter
}

func New(cfg Config, log logging.Logger) *Archiver {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	return &Archiver{cfg: cfg, log: log}
}

func (a *Archiver) Enabled() bool {
	return a != nil && a.cfg.Bucket != ""
}

// ObjectKey is logs/<orgID>/<yyyy>/<mm>/<dd>/<id>.json, dated in UTC.
func ObjectKey(orgID string, at time.Time, id string) string {
	at = at.UTC()
	return path.Join("logs", orgID, at.Format("2006"), at.Format("01"), at.Format("02"), id+".json")
}

// Upload stores entries as one JSON array and returns the object key.
func (a *Archiver) Upload(ctx context.Context, orgID string, entries []models.LogEntry) (string, error) {
	if !a.Enabled() {
		return "", ErrArchiveDisabled
	}
	if orgID == "" {
		return "", ErrNoOrganization
	}
	if len(entries) == 0 {
		return "", ErrNothingToUpload
	}

	body, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode log entries: %w", err)
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return "", err
	}

	key := ObjectKey(orgID, now(), newObjectID())
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	a.log.Info(ctx, "log entries archived", "bucket", a.cfg.Bucket, "key", key, "count", len(entries))
	return key, nil
}

func (a *Archiver) getClient(ctx context.Context) (ObjectPutter, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(a.cfg.Region)}
	if a.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(a.cfg.AccessKey, a.cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	a.client = newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if a.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return a.client, nil
}
