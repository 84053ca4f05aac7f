package metadata

import (
	"fmt"
	"slices"
	"strings"
)

// Separator splits a criteria key into field and operator.
const Separator = "__"

// Criteria maps "field" or "field__op" keys to operands.
//
// Operands are plain Go values (string, int, float64, bool, Value, ...) and
// are converted with FromAny.
type Criteria map[string]any

// ParseKey splits a criteria key into its field and operator.
// A key without Separator uses OpEqual.
func ParseKey(key string) (string, Operator, error) {
	field, token, found := strings.Cut(key, Separator)
	if !found {
		return key, OpEqual, nil
	}
	op, err := ParseOperator(token)
	if err != nil {
		return "", 0, fmt.Errorf("criteria key %q: %w", key, err)
	}
	return field, op, nil
}

// FilterSet converts the criteria into a FilterSet.
//
// Keys are processed in sorted order so that the reported error is the same
// for every run. The conjunction itself does not depend on order.
func (c Criteria) FilterSet() (*FilterSet, error) {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	filters := make([]Filter, 0, len(keys))
	for _, k := range keys {
		field, op, err := ParseKey(k)
		if err != nil {
			return nil, err
		}
		v, err := FromAny(c[k])
		if err != nil {
			return nil, fmt.Errorf("criteria key %q: %w", k, err)
		}
		filters = append(filters, Filter{Key: field, Operator: op, Value: v})
	}
	return NewFilterSet(filters...), nil
}
