// Package suggest implements keyword based category suggestion.
//
// Suggestion is a pure lookup that is completely separate from the
// validated categorization model. A suggestion is only ever a hint for
// the input form, it can not corrupt stored data since every write is
// still validated against the closed category set.
package suggest

import (
	"strings"
	"unicode"

	"github.com/budgetbook/backend/internal/ledger"
	"github.com/ryanuber/go-glob"
)

type rule struct {
	pattern  string
	category string
}

// Rules are checked in order, the first match wins. Patterns are
// matched against the normalized input text, which is lowercased,
// stripped of punctuation and padded with single spaces. A pattern
// ending in "* " therefore matches a whole word, a pattern ending in
// "*" matches a word prefix, so "rent" never matches inside words
// like "current" or "different".
var rules = []rule{
	{"* salary *", "Salary"},
	{"* payroll *", "Salary"},
	{"* bonus*", "Bonus"},
	{"* dividend*", "Investment Returns"},
	{"* interest *", "Investment Returns"},
	{"* rent received *", "Rental Income"},

	{"* rent *", "Housing"},
	{"* mortgage *", "Housing"},
	{"* grocer*", "Food & Groceries"},
	{"* supermarket *", "Food & Groceries"},
	{"* restaurant*", "Food & Groceries"},
	{"* fuel *", "Transportation"},
	{"* petrol *", "Transportation"},
	{"* metro *", "Transportation"},
	{"* taxi *", "Transportation"},
	{"* uber *", "Transportation"},
	{"* electric*", "Utilities"},
	{"* water bill *", "Utilities"},
	{"* internet *", "Utilities"},
	{"* phone *", "Utilities"},
	{"* insurance *", "Insurance"},
	{"* doctor*", "Healthcare"},
	{"* pharmacy *", "Healthcare"},
	{"* medical *", "Healthcare"},
	{"* hospital*", "Healthcare"},
	{"* salon *", "Personal Care"},
	{"* haircut *", "Personal Care"},
	{"* movie*", "Entertainment"},
	{"* cinema *", "Entertainment"},
	{"* netflix *", "Entertainment"},
	{"* concert*", "Entertainment"},
	{"* clothing *", "Shopping"},
	{"* clothes *", "Shopping"},
	{"* amazon *", "Shopping"},
	{"* tuition *", "Education"},
	{"* course*", "Education"},
	{"* book*", "Education"},
	{"* loan*", "Debt Payments"},
	{"* emi *", "Debt Payments"},
	{"* credit card payment *", "Debt Payments"},
	{"* flight*", "Travel"},
	{"* hotel*", "Travel"},
	{"* vacation *", "Travel"},
}

// normalize lowercases the text, replaces every non-alphanumeric rune
// with a space and collapses runs of spaces, so the rule patterns can
// anchor on word boundaries.
func normalize(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	words := strings.Fields(mapped)
	if len(words) == 0 {
		return ""
	}

	return " " + strings.Join(words, " ") + " "
}

// Category suggests a category for a free-form transaction text.
// The second return value reports whether any rule matched.
func Category(text string) (string, bool) {
	normalized := normalize(text)
	if normalized == "" {
		return "", false
	}

	for _, r := range rules {
		if glob.Glob(r.pattern, normalized) {
			return r.category, true
		}
	}

	return "", false
}

// init asserts that every rule points into the closed category set so
// a typo in the rule table is caught at startup, not at suggestion time.
func init() {
	for _, r := range rules {
		if _, ok := ledger.CategoryType(r.category); !ok {
			panic("suggest: rule references unknown category " + r.category)
		}
	}
}
