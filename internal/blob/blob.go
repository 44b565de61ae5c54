// Package blob stores generated illustration images and serves them by
// public URL.
package blob

import "context"

// Object describes a stored blob.
type Object struct {
	// Key is the bucket-relative object name.
	Key string

	// URL is the public download URL.
	URL string
}

// Store is a write-and-delete blob store for generated images.
type Store interface {
	// Put uploads data under key with the given content type and returns
	// the stored object.
	Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error)

	// Delete removes the object with the given key.
	Delete(ctx context.Context, key string) error
}
