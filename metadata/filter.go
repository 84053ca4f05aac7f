package metadata

import (
	"cmp"
	"strings"
)

// Filter represents a single filter condition.
type Filter struct {
	Key      string
	Operator Operator
	Value    Value
}

// FilterSet represents a set of filters that must all match (AND logic).
type FilterSet struct {
	Filters []Filter
}

// NewFilterSet creates a new filter set.
func NewFilterSet(filters ...Filter) *FilterSet {
	return &FilterSet{Filters: filters}
}

// Eq returns a filter matching key == v.
func Eq(key string, v Value) Filter { return Filter{Key: key, Operator: OpEqual, Value: v} }

// Ne returns a filter matching key != v.
func Ne(key string, v Value) Filter { return Filter{Key: key, Operator: OpNotEqual, Value: v} }

// Gt returns a filter matching key > v.
func Gt(key string, v Value) Filter { return Filter{Key: key, Operator: OpGreaterThan, Value: v} }

// Gte returns a filter matching key >= v.
func Gte(key string, v Value) Filter { return Filter{Key: key, Operator: OpGreaterEqual, Value: v} }

// Lt returns a filter matching key < v.
func Lt(key string, v Value) Filter { return Filter{Key: key, Operator: OpLessThan, Value: v} }

// Lte returns a filter matching key <= v.
func Lte(key string, v Value) Filter { return Filter{Key: key, Operator: OpLessEqual, Value: v} }

// Contains returns a filter matching when v is a substring of key.
func Contains(key string, v Value) Filter {
	return Filter{Key: key, Operator: OpContains, Value: v}
}

// Check reports whether the filter can be applied to a field of the given
// kind without evaluating any record.
func (f *Filter) Check(field Kind) error {
	switch {
	case f.Operator == OpContains:
		if field != KindString || f.Value.Kind != KindString {
			return f.mismatch(field)
		}
	case f.Operator.ordering():
		if !orderable(field, f.Value.Kind) {
			return f.mismatch(field)
		}
	case f.Operator > OpContains:
		return &OperatorError{Token: f.Operator.String()}
	}
	return nil
}

// Matches checks if the provided source matches this filter.
// A source without the filter key never matches.
func (f *Filter) Matches(src Source) (bool, error) {
	value, exists := src.Lookup(f.Key)
	if !exists {
		return false, nil
	}
	return f.MatchesValue(value)
}

// MatchesValue checks a single field value against the filter.
func (f *Filter) MatchesValue(value Value) (bool, error) {
	switch f.Operator {
	case OpEqual:
		return compareEqual(value, f.Value), nil
	case OpNotEqual:
		return !compareEqual(value, f.Value), nil
	case OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual:
		ok, valid := compareOrdered(value, f.Value, f.Operator)
		if !valid {
			return false, f.mismatch(value.Kind)
		}
		return ok, nil
	case OpContains:
		if value.Kind != KindString || f.Value.Kind != KindString {
			return false, f.mismatch(value.Kind)
		}
		return strings.Contains(value.s.Value(), f.Value.s.Value()), nil
	default:
		return false, &OperatorError{Token: f.Operator.String()}
	}
}

func (f *Filter) mismatch(field Kind) error {
	return &TypeMismatchError{Key: f.Key, Operator: f.Operator, Field: field, Operand: f.Value.Kind}
}

// Matches checks if the provided source matches all filters in the set.
// Evaluation stops at the first filter that fails or errors.
func (fs *FilterSet) Matches(src Source) (bool, error) {
	for i := range fs.Filters {
		ok, err := fs.Filters[i].Matches(src)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func compareEqual(a, b Value) bool {
	if a.Kind == KindNull && b.Kind == KindNull {
		return true
	}
	if a.Kind == KindNull || b.Kind == KindNull {
		return false
	}

	if isNumber(a) && isNumber(b) {
		// Prefer exact int compare when possible.
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.I64 == b.I64
		}
		return asFloat64(a) == asFloat64(b)
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindString:
		return a.s == b.s
	case KindBool:
		return a.B == b.B
	default:
		return false
	}
}

// compareOrdered applies an ordering operator. The second result is false
// when the kinds have no common order.
func compareOrdered(a, b Value, op Operator) (bool, bool) {
	switch {
	case a.Kind == KindInt && b.Kind == KindInt:
		return ordered(a.I64, b.I64, op), true
	case isNumber(a) && isNumber(b):
		return ordered(asFloat64(a), asFloat64(b), op), true
	case a.Kind == KindString && b.Kind == KindString:
		return ordered(a.s.Value(), b.s.Value(), op), true
	default:
		return false, false
	}
}

func ordered[T cmp.Ordered](x, y T, op Operator) bool {
	switch op {
	case OpGreaterThan:
		return x > y
	case OpGreaterEqual:
		return x >= y
	case OpLessThan:
		return x < y
	case OpLessEqual:
		return x <= y
	default:
		return false
	}
}

func orderable(a, b Kind) bool {
	num := func(k Kind) bool { return k == KindInt || k == KindFloat }
	return (num(a) && num(b)) || (a == KindString && b == KindString)
}

func isNumber(v Value) bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

func asFloat64(v Value) float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.I64)
	case KindFloat:
		return v.F64
	default:
		return 0
	}
}
