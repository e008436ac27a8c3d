package model

import "strings"

// Recognized attribute names.
const (
	Calories     = "calories"
	Fat          = "fat"
	Carbohydrate = "carbohydrate"
	Fiber        = "fiber"
	Protein      = "protein"
)

var attributes = []string{Calories, Fat, Carbohydrate, Fiber, Protein}

// Attributes returns the recognized attribute names in their fixed order.
// The returned slice is a copy.
func Attributes() []string {
	out := make([]string, len(attributes))
	copy(out, attributes)
	return out
}

// ParseAttribute matches s against the recognized attributes, ignoring case
// and surrounding space.
func ParseAttribute(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range attributes {
		if a == s {
			return a, true
		}
	}
	return "", false
}
