package chatbot

import (
	"context"
	"net/http"

	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

// PostChat sends one message to the chatbot and returns its answer
func (c *Client) PostChat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	var resp model.ChatResponse
	if err := c.doJSON(ctx, request{
		operation: "post_chat",
		method:    http.MethodPost,
		path:      "/chat",
		body:      req,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
