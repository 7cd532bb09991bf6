package chatbot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

// ListFAQs returns every FAQ. Paginated envelopes are flattened to their items.
func (c *Client) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	data, err := c.do(ctx, request{
		operation: "list_faqs",
		method:    http.MethodGet,
		path:      "/faqs",
	})
	if err != nil {
		return nil, err
	}

	page, err := decodePage[model.FAQ](data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode FAQ list")
	}
	return page.Items, nil
}

func (c *Client) GetFAQ(ctx context.Context, id int64) (*model.FAQ, error) {
	var faq model.FAQ
	if err := c.doJSON(ctx, request{
		operation: "get_faq",
		method:    http.MethodGet,
		path:      fmt.Sprintf("/faqs/%d", id),
	}, &faq); err != nil {
		return nil, goerr.Wrap(err, "failed to get FAQ", goerr.V(IDKey, id))
	}
	return &faq, nil
}

func (c *Client) CreateFAQ(ctx context.Context, in model.FAQCreate) (*model.FAQ, error) {
	var faq model.FAQ
	if err := c.doJSON(ctx, request{
		operation: "create_faq",
		method:    http.MethodPost,
		path:      "/faqs",
		body:      in,
	}, &faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

func (c *Client) UpdateFAQ(ctx context.Context, id int64, in model.FAQUpdate) (*model.FAQ, error) {
	var faq model.FAQ
	if err := c.doJSON(ctx, request{
		operation: "update_faq",
		method:    http.MethodPut,
		path:      fmt.Sprintf("/faqs/%d", id),
		body:      in,
	}, &faq); err != nil {
		return nil, goerr.Wrap(err, "failed to update FAQ", goerr.V(IDKey, id))
	}
	return &faq, nil
}

func (c *Client) DeleteFAQ(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, request{
		operation: "delete_faq",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/faqs/%d", id),
	}); err != nil {
		return goerr.Wrap(err, "failed to delete FAQ", goerr.V(IDKey, id))
	}
	return nil
}

// ReindexFAQs asks the backend to rebuild its FAQ search index
func (c *Client) ReindexFAQs(ctx context.Context) error {
	_, err := c.do(ctx, request{
		operation: "reindex_faqs",
		method:    http.MethodPost,
		path:      "/faqs/reindex",
	})
	return err
}
