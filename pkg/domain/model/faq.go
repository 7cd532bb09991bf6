package model

// CategoryRef is the category summary embedded in an FAQ
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FAQ is a question/answer pair the chatbot matches against
type FAQ struct {
	ID         int64        `json:"id"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	CategoryID *int64       `json:"category_id,omitempty"`
	IsActive   bool         `json:"is_active"`
	CreatedAt  Timestamp    `json:"created_at"`
	UpdatedAt  *Timestamp   `json:"updated_at,omitempty"`
	Category   *CategoryRef `json:"category,omitempty"`
}

// FAQCreate is the payload of POST /faqs
type FAQCreate struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID *int64 `json:"category_id,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// FAQUpdate is the payload of PUT /faqs/{id}. Nil fields are left untouched.
type FAQUpdate struct {
	Question   *string `json:"question,omitempty"`
	Answer     *string `json:"answer,omitempty"`
	CategoryID *int64  `json:"category_id,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// Category groups FAQs
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt Timestamp `json:"created_at"`
}

// CategoryInput is the payload of POST /categories and PUT /categories/{id}
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
