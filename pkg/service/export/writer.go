package export

import (
	"context"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"github.com/secmon-lab/chatdesk/pkg/utils/safe"
)

// ContentType of encoded exports
const ContentType = "text/csv; charset=utf-8"

// FileWriter stores exports in a local directory
type FileWriter struct {
	dir string
}

var _ interfaces.ExportWriter = (*FileWriter)(nil)

// NewFileWriter returns a writer for dir. An empty dir means the current directory.
func NewFileWriter(dir string) *FileWriter {
	if dir == "" {
		dir = "."
	}
	return &FileWriter{dir: dir}
}

func (w *FileWriter) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create export directory", goerr.V("dir", w.dir))
	}

	path := filepath.Join(w.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write export file", goerr.V("path", path))
	}

	logging.From(ctx).Info("export written", "path", path, "bytes", len(data))
	return path, nil
}

// GCSWriter uploads exports as objects of a Cloud Storage bucket
type GCSWriter struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.ExportWriter = (*GCSWriter)(nil)

type GCSOption func(*GCSWriter)

// WithObjectPrefix prepends prefix to every object name
func WithObjectPrefix(prefix string) GCSOption {
	return func(w *GCSWriter) {
		w.prefix = prefix
	}
}

func NewGCSWriter(client *storage.Client, bucket string, opts ...GCSOption) (*GCSWriter, error) {
	if client == nil {
		return nil, goerr.New("storage client is required")
	}
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	w := &GCSWriter{client: client, bucket: bucket}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *GCSWriter) Write(ctx context.Context, name string, data []byte) (string, error) {
	objectName := w.prefix + name
	obj := w.client.Bucket(w.bucket).Object(objectName)

	writer := obj.NewWriter(ctx)
	writer.ContentType = ContentType

	if _, err := writer.Write(data); err != nil {
		safe.Close(ctx, writer)
		return "", goerr.Wrap(err, "failed to upload export",
			goerr.V("bucket", w.bucket), goerr.V("object", objectName))
	}
	if err := writer.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize export upload",
			goerr.V("bucket", w.bucket), goerr.V("object", objectName))
	}

	uri := "gs://" + w.bucket + "/" + objectName
	logging.From(ctx).Info("export uploaded", "uri", uri, "bytes", len(data))
	return uri, nil
}
