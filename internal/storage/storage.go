// Package storage keeps a copy of every accepted upload so a job's source
// file can be inspected after the fact.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// ErrObjectNotFound is returned when a key has no object.
var ErrObjectNotFound = errors.New("object not found")

// Archive stores source files by key.
type Archive interface {
	Upload(ctx context.Context, key string, data io.ReadSeeker, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ObjectKey returns the archive key of a job's source file:
// imports/<tenant>/<job>/<file name>.
func ObjectKey(tenantID, jobID, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return path.Join("imports", tenantID, jobID, name)
}
