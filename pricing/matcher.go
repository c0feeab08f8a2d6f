package pricing

import "strings"

// Phrases that signal a listing's condition. The new-condition check runs
// first and wins when phrases from both sets are present; the refurbishment
// check maps refurbished items back to the used price point.
var (
	newSignals    = []string{"new", "brand new", "unopened", "sealed"}
	refurbSignals = []string{"refurbished", "renewed", "certified"}
)

// Matcher identifies products and their condition from listing text.
type Matcher struct {
	table *Table
}

// NewMatcher creates a Matcher backed by the given reference table.
func NewMatcher(table *Table) *Matcher {
	return &Matcher{table: table}
}

// Identify returns the matched product identifier (empty when nothing
// matches) and the condition classification for the given title and
// description. The condition is always computed, even without a product
// match.
func (m *Matcher) Identify(title, description string) (string, string) {
	text := strings.ToLower(title + " " + description)

	condition := ConditionUsed
	if containsAny(text, newSignals) {
		condition = ConditionNew
	} else if containsAny(text, refurbSignals) {
		condition = ConditionUsed
	}

	productID, ok := m.table.match(text)
	if !ok {
		return "", condition
	}
	return productID, condition
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
