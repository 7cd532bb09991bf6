package interfaces

import "context"

// Reporter is the observability sink for failures the dashboard swallows
type Reporter interface {
	Report(ctx context.Context, err error, msg string)
}
