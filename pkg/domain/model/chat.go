package model

import "encoding/json"

// ChatRequest is the payload of POST /chat
type ChatRequest struct {
	Message string `json:"message"`
	Debug   bool   `json:"debug,omitempty"`
}

// ChatResponse is the chatbot answer. DebugInfo is backend defined and kept raw.
type ChatResponse struct {
	Answer    string          `json:"answer"`
	DebugInfo json.RawMessage `json:"debug_info,omitempty"`
}
