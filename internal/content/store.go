package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/klauspost/compress/zstd"
)

// ErrNotFound is returned when an object does not exist.
var ErrNotFound = errors.New("content: object not found")

// maxObjectSize caps a single content object.
const maxObjectSize = 1 << 20

// StoreConfig configures the S3 content store.
type StoreConfig struct {
	Bucket   string
	Prefix   string // Key prefix, e.g. "content/"
	Region   string
	Endpoint string // Optional S3-compatible endpoint; enables path-style addressing

	// Static credentials. Empty uses the default AWS credential chain.
	AccessKeyID string
	SecretKey   string

	HTTPClient *http.Client // Optional, mainly for tests
}

// S3Store reads content objects from an S3 bucket.
type S3Store struct {
	s3     *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed content store.
func NewS3Store(ctx context.Context, cfg StoreConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("content: bucket is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, config.WithHTTPClient(cfg.HTTPClient))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("content: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{s3: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Fetch downloads one object. Objects stored with Content-Encoding "zstd"
// are decompressed transparently.
func (s *S3Store) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := s.prefix + name
	out, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content: get %q: %w", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	var body io.Reader = io.LimitReader(out.Body, maxObjectSize)
	if strings.EqualFold(aws.ToString(out.ContentEncoding), "zstd") {
		dec, err := zstd.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("content: zstd reader %q: %w", key, err)
		}
		defer dec.Close()
		body = io.LimitReader(dec, maxObjectSize)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("content: read %q: %w", key, err)
	}
	return buf.Bytes(), nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "404":
			return true
		}
	}
	var respErr *smithyhttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
