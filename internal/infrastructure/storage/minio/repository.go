package minio

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// ErrInvalidRequest is returned for an empty object key.
var ErrInvalidRequest = errors.New(errors.ErrCodeValidation, "object key is required")

// ErrClientClosed is returned after Close.
var ErrClientClosed = errors.New(errors.ErrCodeServiceUnavailable, "minio client is closed")

// ReportStore writes rendered reports under the configured prefix and
// returns a presigned download URL.
type ReportStore struct {
	client *MinIOClient
	prefix string
	expiry time.Duration
	logger logging.Logger
}

// NewReportStore binds a store to client.
func NewReportStore(client *MinIOClient, log logging.Logger) *ReportStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ReportStore{
		client: client,
		prefix: client.config.Prefix,
		expiry: client.config.PresignExpiry,
		logger: log.Named("report_store"),
	}
}

// ObjectKey returns the full object name for key.
func (s *ReportStore) ObjectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return strings.TrimRight(s.prefix, "/") + "/" + strings.TrimLeft(key, "/")
}

// Save uploads data and returns a presigned URL valid for the configured expiry.
func (s *ReportStore) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrInvalidRequest
	}
	if s.client.isClosed() {
		return "", ErrClientClosed
	}
	object := s.ObjectKey(key)

	info, err := s.client.client.PutObject(ctx, s.client.Bucket(), object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "upload failed")
	}

	link, err := s.client.GeneratePresignedGetURL(ctx, object, s.expiry)
	if err != nil {
		return "", err
	}
	s.logger.Debug("report stored",
		logging.String("bucket", info.Bucket),
		logging.String("key", object),
		logging.Int64("size", info.Size))
	return link, nil
}

//Personal.AI order the ending
