package types

// Source tells which pipeline stage produced the chatbot answer
type Source string

const (
	SourceFAQ      Source = "faq"
	SourceRAG      Source = "rag"
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// AllSources returns all answer sources
func AllSources() []Source {
	return []Source{
		SourceFAQ,
		SourceRAG,
		SourceLLM,
		SourceFallback,
	}
}

// IsValid checks if the source is valid
func (s Source) IsValid() bool {
	switch s {
	case SourceFAQ,
		SourceRAG,
		SourceLLM,
		SourceFallback:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source
func (s Source) String() string {
	return string(s)
}
