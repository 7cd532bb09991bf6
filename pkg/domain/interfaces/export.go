package interfaces

import "context"

// ExportWriter stores an encoded export under name and returns where it went
type ExportWriter interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}
