// Package storage delivers finished documents to their destination: a local
// file or an S3-compatible object store. Writes are all-or-nothing; a failed
// Put never leaves a truncated object behind.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	ErrEmptyKey        = errors.New("storage key is required")
	ErrInvalidLocation = errors.New("invalid output location")
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the destination of generated documents.
type Storage interface {
	// Put stores the content of r under key, replacing any existing object atomically.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// PresignGet returns a link to the stored document. Object stores sign it
	// for expiry; local files get a file:// URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// SchemeS3 marks an object store location: s3://bucket/key.
const SchemeS3 = "s3://"

// Location is a parsed output path.
type Location struct {
	Bucket string // empty for local files
	Key    string
}

// Remote reports whether the location points at an object store.
func (l Location) Remote() bool { return l.Bucket != "" }

func (l Location) String() string {
	if l.Remote() {
		return SchemeS3 + l.Bucket + "/" + l.Key
	}
	return l.Key
}

// ParseLocation splits an output path. "s3://bucket/key" selects object
// storage; anything else is a local filesystem path.
func ParseLocation(path string) (Location, error) {
	if strings.TrimSpace(path) == "" {
		return Location{}, ErrEmptyKey
	}
	if !strings.HasPrefix(path, SchemeS3) {
		return Location{Key: path}, nil
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, SchemeS3), "/")
	if !ok || bucket == "" || strings.Trim(key, "/") == "" {
		return Location{}, fmt.Errorf("%w: %q (want s3://bucket/key)", ErrInvalidLocation, path)
	}
	return Location{Bucket: bucket, Key: strings.TrimLeft(key, "/")}, nil
}
