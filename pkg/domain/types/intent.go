package types

import "fmt"

// Intent is the classifier label the chatbot backend attaches to a conversation turn
type Intent string

const (
	IntentFAQ        Intent = "faq"
	IntentSmalltalk  Intent = "smalltalk"
	IntentChitchat   Intent = "chitchat"
	IntentComplaint  Intent = "complaint"
	IntentSales      Intent = "sales"
	IntentSupport    Intent = "support"
	IntentOutOfScope Intent = "out_of_scope"
)

// AllIntents returns all intents known to the dashboard, in display order
func AllIntents() []Intent {
	return []Intent{
		IntentFAQ,
		IntentSmalltalk,
		IntentChitchat,
		IntentComplaint,
		IntentSales,
		IntentSupport,
		IntentOutOfScope,
	}
}

// IsValid checks if the intent is one of the known intents
func (i Intent) IsValid() bool {
	switch i {
	case IntentFAQ,
		IntentSmalltalk,
		IntentChitchat,
		IntentComplaint,
		IntentSales,
		IntentSupport,
		IntentOutOfScope:
		return true
	default:
		return false
	}
}

// Label returns the Persian label shown in the intent filter
func (i Intent) Label() string {
	switch i {
	case IntentFAQ:
		return "سؤال متداول"
	case IntentSmalltalk:
		return "گفت‌وگوی دوستانه"
	case IntentChitchat:
		return "گفت‌وگوی غیررسمی"
	case IntentComplaint:
		return "شکایت"
	case IntentSales:
		return "فروش"
	case IntentSupport:
		return "پشتیبانی"
	case IntentOutOfScope:
		return "خارج از حوزه"
	default:
		return string(i)
	}
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}

// ParseIntent parses a string into an Intent
func ParseIntent(s string) (Intent, error) {
	intent := Intent(s)
	if !intent.IsValid() {
		return "", fmt.Errorf("invalid intent: %s", s)
	}
	return intent, nil
}
