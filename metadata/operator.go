package metadata

// Operator represents a comparison operator for filtering.
type Operator uint8

const (
	// OpEqual represents the equality operator. It is the default when a
	// criteria key has no suffix.
	OpEqual Operator = iota
	// OpNotEqual represents the inequality operator.
	OpNotEqual
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual
	// OpLessThan represents the less than operator.
	OpLessThan
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual
	// OpContains represents the contains substring operator.
	OpContains
)

// ParseOperator maps a criteria suffix token to its Operator.
func ParseOperator(token string) (Operator, error) {
	switch token {
	case "eq":
		return OpEqual, nil
	case "ne":
		return OpNotEqual, nil
	case "gt":
		return OpGreaterThan, nil
	case "gte":
		return OpGreaterEqual, nil
	case "lt":
		return OpLessThan, nil
	case "lte":
		return OpLessEqual, nil
	case "contains":
		return OpContains, nil
	default:
		return 0, &OperatorError{Token: token}
	}
}

// String returns the suffix token of the operator.
func (op Operator) String() string {
	switch op {
	case OpEqual:
		return "eq"
	case OpNotEqual:
		return "ne"
	case OpGreaterThan:
		return "gt"
	case OpGreaterEqual:
		return "gte"
	case OpLessThan:
		return "lt"
	case OpLessEqual:
		return "lte"
	case OpContains:
		return "contains"
	default:
		return "unknown"
	}
}

// ordering reports whether op compares by order rather than identity.
func (op Operator) ordering() bool {
	switch op {
	case OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual:
		return true
	default:
		return false
	}
}
