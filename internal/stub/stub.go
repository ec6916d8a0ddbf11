package stub

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// stubCategories is the static list served by /api/stub-categories.
var stubCategories = []string{
	"Category:Stub categories",
	"Category:Geography stubs",
	"Category:History stubs",
	"Category:Science stubs",
	"Category:Technology stubs",
	"Category:Arts stubs",
	"Category:Biography stubs",
	"Category:Philosophy stubs",
	"Category:Politics stubs",
	"Category:Society stubs",
	"Category:Sports stubs",
}

// Categories returns the known stub-related category names.
func Categories() []string {
	return append([]string(nil), stubCategories...)
}

// IsStub reports whether a category set marks an article as a stub. A
// category qualifies if it contains "stub" case-insensitively, or contains
// both "article" and "quality" (Wikipedia's quality-assessment scheme).
// Known to misclassify around the edges; the heuristic is kept as-is.
func IsStub(categories []string) bool {
	for _, cat := range categories {
		c := strings.ToLower(cat)
		if strings.Contains(c, "stub") {
			return true
		}
		if strings.Contains(c, "article") && strings.Contains(c, "quality") {
			return true
		}
	}
	return false
}

var (
	originKeywords       = []string{"born", "founded", "established", "created"}
	significanceKeywords = []string{"notable", "known for", "famous"}
)

// Gaps produces human-readable suggestions for what an article's extract is
// missing relative to a topic. The four checks run independently and their
// order is the output order.
func Gaps(extract, topic string) []string {
	lower := strings.ToLower(extract)

	var missing []string
	// Character count, not bytes; non-ASCII extracts must not skew the check.
	if utf8.RuneCountInString(extract) < 500 {
		missing = append(missing, "Article needs expansion with more detailed information")
	}
	if !containsAny(lower, originKeywords) {
		missing = append(missing, "Missing origin/creation/founding information")
	}
	if !containsAny(lower, significanceKeywords) {
		missing = append(missing, "Missing significance or notable achievements")
	}
	if !strings.Contains(lower, strings.ToLower(topic)) {
		missing = append(missing, fmt.Sprintf("Could use more specific information about %s", topic))
	}

	return missing
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
