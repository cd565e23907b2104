// Package storage is the object-store boundary: named buckets that accept
// an upload and hand back a public URL. The local implementation writes
// under the media dir served by the /media route.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	BucketProperties = "properties"
	BucketBlogImages = "blog-images"
	BucketBrochures  = "brochures"
)

// Store uploads objects into named buckets and exposes their public URLs.
type Store interface {
	Upload(bucket, path string, r io.Reader) (string, error)
	PublicURL(bucket, path string) string
}

type MediaStore struct {
	Dir string
}

func NewMediaStore(dir string) *MediaStore { return &MediaStore{Dir: dir} }

// Upload writes the object and returns its public URL. Paths are confined
// to the bucket directory; traversal segments are rejected.
func (s *MediaStore) Upload(bucket, path string, r io.Reader) (string, error) {
	clean := filepath.Clean(path)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("storage: invalid object path %q", path)
	}
	full := filepath.Join(s.Dir, bucket, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", err
	}
	return s.PublicURL(bucket, clean), nil
}

func (s *MediaStore) PublicURL(bucket, path string) string {
	return "/media/" + bucket + "/" + filepath.ToSlash(path)
}
