package prompt

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Filter decides whether the option at index, labelled value, stays visible
// while filter is typed.
type Filter func(filter, value string, index int) bool

// Filter names accepted by FilterByName.
const (
	FilterSubstring = "substring"
	FilterFuzzy     = "fuzzy"
	FilterPrefix    = "prefix"
)

// fold composes s to NFC and case-folds it, so decomposed labels match
// precomposed filter text.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// DefaultFilter keeps options whose label contains filter, ignoring case.
func DefaultFilter(filter, value string, _ int) bool {
	return strings.Contains(fold(value), fold(filter))
}

// PrefixFilter keeps options whose label starts with filter, ignoring case.
func PrefixFilter(filter, value string, _ int) bool {
	return strings.HasPrefix(fold(value), fold(filter))
}

// FuzzyFilter keeps options whose label contains the runes of filter in order.
func FuzzyFilter(filter, value string, _ int) bool {
	return len(fuzzy.Find(filter, []string{value})) > 0
}

// FilterByName resolves one of the named built-in filters. An empty name
// selects DefaultFilter.
func FilterByName(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FilterSubstring:
		return DefaultFilter, nil
	case FilterFuzzy:
		return FuzzyFilter, nil
	case FilterPrefix:
		return PrefixFilter, nil
	default:
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidConfiguration, name)
	}
}
