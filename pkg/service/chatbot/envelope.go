package chatbot

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// decodePage accepts both list shapes the backend uses: a paginated
// {"items": [...]} envelope or a bare JSON array. A bare array is returned
// as a single page holding every item.
func decodePage[T any](data []byte) (*model.Page[T], error) {
	if !gjson.ValidBytes(data) {
		return nil, goerr.Wrap(ErrUnexpectedPayload, "response is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	switch {
	case root.IsArray():
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, goerr.Wrap(ErrUnexpectedPayload, err.Error())
		}
		if items == nil {
			items = []T{}
		}
		return &model.Page[T]{
			Items:      items,
			Total:      int64(len(items)),
			Page:       1,
			PageSize:   len(items),
			TotalPages: 1,
		}, nil

	case root.IsObject() && root.Get("items").IsArray():
		var page model.Page[T]
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, goerr.Wrap(ErrUnexpectedPayload, err.Error())
		}
		if page.Items == nil {
			page.Items = []T{}
		}
		return &page, nil

	default:
		return nil, goerr.Wrap(ErrUnexpectedPayload, "expected a JSON array or an object with items",
			goerr.V("type", root.Type.String()))
	}
}
