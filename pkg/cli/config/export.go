package config

import (
	"context"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/chatdesk/pkg/service/export"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Export holds the destination of CSV exports
type Export struct {
	dir       string
	gcsBucket string
	gcsPrefix string
}

// Flags returns CLI flags for export configuration
func (e *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Directory to write the CSV export to",
			Category:    "Export",
			Value:       ".",
			Sources:     cli.EnvVars("CHATDESK_EXPORT_DIR"),
			Destination: &e.dir,
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Upload the CSV export to this Cloud Storage bucket instead of a local file",
			Category:    "Export",
			Sources:     cli.EnvVars("CHATDESK_EXPORT_GCS_BUCKET"),
			Destination: &e.gcsBucket,
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object name prefix for Cloud Storage uploads",
			Category:    "Export",
			Sources:     cli.EnvVars("CHATDESK_EXPORT_GCS_PREFIX"),
			Destination: &e.gcsPrefix,
		},
	}
}

// ApplyProfile fills flags that were not set explicitly from p
func (e *Export) ApplyProfile(c *cli.Command, p *ProfileData) {
	if p == nil {
		return
	}
	if !c.IsSet("out") && p.Export.Dir != "" {
		e.dir = p.Export.Dir
	}
	if !c.IsSet("gcs-bucket") && p.Export.GCSBucket != "" {
		e.gcsBucket = p.Export.GCSBucket
	}
}

// LogAttrs returns log attributes for the export configuration
func (e *Export) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("dir", e.dir),
		slog.String("gcs_bucket", e.gcsBucket),
	}
}

// Configure returns the export writer. The returned function releases
// resources held by the writer and must be called when done.
func (e *Export) Configure(ctx context.Context) (interfaces.ExportWriter, func(), error) {
	if e.gcsBucket == "" {
		return export.NewFileWriter(e.dir), func() {}, nil
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create storage client")
	}
	closer := func() {
		if err := client.Close(); err != nil {
			logging.From(ctx).Warn("failed to close storage client", "error", err)
		}
	}

	w, err := export.NewGCSWriter(client, e.gcsBucket, export.WithObjectPrefix(e.gcsPrefix))
	if err != nil {
		closer()
		return nil, nil, goerr.Wrap(err, "failed to create GCS export writer")
	}
	return w, closer, nil
}
