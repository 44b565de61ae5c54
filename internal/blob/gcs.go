package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const (
	uploadTimeout = 2 * time.Minute
	deleteTimeout = 30 * time.Second
)

// GCSStore stores blobs in a Google Cloud Storage bucket.
type GCSStore struct {
	client    *storage.Client
	bucket    string
	cdnDomain string
}

// NewGCSStore creates a store backed by the named bucket. cdnDomain is
// optional; when set, public URLs point at the CDN instead of the bucket.
func NewGCSStore(ctx context.Context, bucket, cdnDomain string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	opts := clientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSStore{client: client, bucket: bucket, cdnDomain: cdnDomain}, nil
}

// NewGCSStoreFromEnv creates a store from HOMEWISE_GCS_BUCKET and the
// optional HOMEWISE_CDN_DOMAIN.
func NewGCSStoreFromEnv(ctx context.Context) (*GCSStore, error) {
	bucket := os.Getenv("HOMEWISE_GCS_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("missing env var HOMEWISE_GCS_BUCKET")
	}
	return NewGCSStore(ctx, bucket, os.Getenv("HOMEWISE_CDN_DOMAIN"))
}

// Put uploads data and makes it publicly readable.
func (s *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	w.PredefinedACL = "publicRead"

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close writer for %q: %w", key, err)
	}

	return &Object{Key: key, URL: s.publicURL(key)}, nil
}

// Delete removes the object with the given key.
func (s *GCSStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("delete object %q in bucket %q: %w", key, s.bucket, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) publicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key)
}

// clientOptionsFromEnv builds auth options from the standard Google
// credential environment variables. An inline JSON credential takes
// precedence over a file path.
func clientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}
