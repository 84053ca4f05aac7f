// Package metadata provides the typed values and predicate filters used to
// query a cinema collection.
//
// # Values
//
// Operands and field values are small typed values:
//
//   - String: metadata.String("Sci-Fi")
//   - Int: metadata.Int(2010)
//   - Float: metadata.Float(8.5)
//   - Bool: metadata.Bool(true)
//
// Untyped Go values are converted with FromAny.
//
// # Filter Operations
//
//   - Eq(field, value): Equality check
//   - Ne(field, value): Inequality check
//   - Gt(field, value): Greater than
//   - Gte(field, value): Greater than or equal
//   - Lt(field, value): Less than
//   - Lte(field, value): Less than or equal
//   - Contains(field, value): Substring test on string fields
//
// Filters in a FilterSet are combined with AND:
//
//	fs := metadata.NewFilterSet(
//	    metadata.Lt("year", metadata.Int(2010)),
//	    metadata.Gte("rating", metadata.Float(9.0)),
//	)
//
// # Criteria
//
// Criteria is the keyword form of a FilterSet. Each key is either a field
// name or "field__op":
//
//	fs, err := metadata.Criteria{"year__lt": 2010, "genre": "Drama"}.FilterSet()
//
// An unknown operator suffix fails with ErrInvalidOperator. Numbers compare
// numerically regardless of int or float kind, strings compare
// lexicographically, and any other ordering comparison fails with
// ErrTypeMismatch.
//
// # Evaluation
//
// Select evaluates a FilterSet against a slice of sources. Each filter
// produces a roaring Bitmap of matching positions and the bitmaps are
// intersected.
package metadata
