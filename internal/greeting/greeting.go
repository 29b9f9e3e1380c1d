// Package greeting holds the pure formatting core of the form demo:
// the greeting template, the default-name rule and the literal UI texts.
package greeting

import "fmt"

const (
	// DefaultName is substituted when the name entry is empty.
	DefaultName = "World"

	// WaitingText is the greeting label content before the first greeting.
	WaitingText = "...waiting for a greeting..."

	// ClearedText replaces the text box content when it is cleared.
	ClearedText = "Text cleared!"
)

// SeedText is the initial multi-line text box content: exactly two lines,
// each terminated by a newline.
const SeedText = "This is a multi-line text box. It can hold several lines.\n" +
	"Greet Me reads the name entry and updates the label above.\n"

// EffectiveName substitutes the default for an empty name. Whitespace is
// preserved, only the zero-length string is substituted.
func EffectiveName(name string) string {
	if name == "" {
		return DefaultName
	}
	return name
}

// Format renders the greeting for the given name.
func Format(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to HCI.", EffectiveName(name))
}
