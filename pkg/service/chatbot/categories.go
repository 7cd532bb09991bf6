package chatbot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	data, err := c.do(ctx, request{
		operation: "list_categories",
		method:    http.MethodGet,
		path:      "/categories",
	})
	if err != nil {
		return nil, err
	}

	page, err := decodePage[model.Category](data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode category list")
	}
	return page.Items, nil
}

func (c *Client) CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	var category model.Category
	if err := c.doJSON(ctx, request{
		operation: "create_category",
		method:    http.MethodPost,
		path:      "/categories",
		body:      in,
	}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error) {
	var category model.Category
	if err := c.doJSON(ctx, request{
		operation: "update_category",
		method:    http.MethodPut,
		path:      fmt.Sprintf("/categories/%d", id),
		body:      in,
	}, &category); err != nil {
		return nil, goerr.Wrap(err, "failed to update category", goerr.V(IDKey, id))
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, request{
		operation: "delete_category",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/categories/%d", id),
	}); err != nil {
		return goerr.Wrap(err, "failed to delete category", goerr.V(IDKey, id))
	}
	return nil
}
