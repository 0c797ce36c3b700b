package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

// fileStorage keeps documents on the local filesystem. Keys are paths,
// relative keys resolve against root.
type fileStorage struct {
	root string
	perm os.FileMode
}

// NewFileStorage returns a Storage rooted at root ("" means the working
// directory).
func NewFileStorage(root string) Storage {
	return &fileStorage{root: root, perm: 0o644}
}

func (f *fileStorage) path(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if filepath.IsAbs(key) || f.root == "" {
		return filepath.Clean(key), nil
	}
	return filepath.Join(f.root, key), nil
}

// Put writes r to a pending file next to the target and atomically replaces
// the target with it. On any failure the pending file is removed and the
// target is left as it was.
func (f *fileStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	target, err := f.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}

	pf, err := renameio.NewPendingFile(target,
		renameio.WithTempDir(filepath.Dir(target)),
		renameio.WithPermissions(f.perm),
	)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create pending file for %s: %w", target, err)
	}
	defer pf.Cleanup()

	n, err := io.Copy(pf, r)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write %s: %w", target, err)
	}
	if opt.Size > 0 && opt.Size != n {
		return ObjectInfo{}, fmt.Errorf("write %s: short write %d of %d bytes", target, n, opt.Size)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return ObjectInfo{}, fmt.Errorf("replace %s: %w", target, err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}, nil
}

// PresignGet returns a file:// URL; local files carry no expiry.
func (f *fileStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	p, err := f.path(key)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
