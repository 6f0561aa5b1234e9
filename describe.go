package deadline

import "strings"

const closureIntroducer = "func() bool"

// NormalizeDescription turns a textual rendering of a condition into a
// compact form suitable for failure messages.
//
// Internal whitespace is collapsed to single spaces, a leading "func() bool"
// closure introducer is stripped, and a body of the form "{ return X }" is
// unwrapped to "X". Descriptions that don't match these shapes are returned
// with whitespace normalization only; an empty input stays empty so callers
// can fall back to a generic message.
func NormalizeDescription(desc string) string {
	desc = strings.Join(strings.Fields(desc), " ")
	desc = strings.TrimSpace(strings.TrimPrefix(desc, closureIntroducer))

	if strings.HasPrefix(desc, "{") && strings.HasSuffix(desc, "}") {
		body := strings.TrimSpace(desc[1 : len(desc)-1])
		// Only single-statement bodies are unwrapped; anything more complex
		// reads better with its braces intact.
		if strings.HasPrefix(body, "return ") && !strings.Contains(body, ";") {
			desc = strings.TrimSpace(strings.TrimPrefix(body, "return "))
		}
	}
	return desc
}
