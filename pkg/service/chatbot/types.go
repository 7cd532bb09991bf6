package chatbot

import (
	"context"

	"github.com/secmon-lab/chatdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

const (
	// DefaultBaseURL is used when no override is configured
	DefaultBaseURL = "http://localhost:8000/api"

	// BaseURLEnv overrides DefaultBaseURL
	BaseURLEnv = "CHATDESK_API_URL"
)

// Service provides typed access to the chatbot backend REST API. Each
// method performs exactly one request: no retry, backoff or caching.
type Service interface {
	interfaces.LogClient

	PostChat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error)

	ListFAQs(ctx context.Context) ([]model.FAQ, error)
	GetFAQ(ctx context.Context, id int64) (*model.FAQ, error)
	CreateFAQ(ctx context.Context, in model.FAQCreate) (*model.FAQ, error)
	UpdateFAQ(ctx context.Context, id int64, in model.FAQUpdate) (*model.FAQ, error)
	DeleteFAQ(ctx context.Context, id int64) error
	ReindexFAQs(ctx context.Context) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ResolveBaseURL picks the API base URL from the environment, falling back
// to DefaultBaseURL. lookup is normally os.LookupEnv.
func ResolveBaseURL(lookup func(string) (string, bool)) string {
	if lookup != nil {
		if v, ok := lookup(BaseURLEnv); ok && v != "" {
			return v
		}
	}
	return DefaultBaseURL
}
