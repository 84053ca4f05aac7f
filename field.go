package cinema

import "github.com/hupe1980/cinema/metadata"

// Field names a movie attribute that filters can read.
type Field uint8

const (
	FieldTitle Field = iota
	FieldYear
	FieldGenre
	FieldRating
)

type fieldSpec struct {
	name string
	kind metadata.Kind
	get  func(*Movie) metadata.Value
}

var fieldTable = [...]fieldSpec{
	FieldTitle: {
		name: "title",
		kind: metadata.KindString,
		get:  func(m *Movie) metadata.Value { return metadata.String(m.Title) },
	},
	FieldYear: {
		name: "year",
		kind: metadata.KindInt,
		get:  func(m *Movie) metadata.Value { return metadata.Int(int64(m.Year)) },
	},
	FieldGenre: {
		name: "genre",
		kind: metadata.KindString,
		get:  func(m *Movie) metadata.Value { return metadata.String(m.Genre) },
	},
	FieldRating: {
		name: "rating",
		kind: metadata.KindFloat,
		get:  func(m *Movie) metadata.Value { return metadata.Float(m.Rating) },
	},
}

// Fields returns all filterable fields in declaration order.
func Fields() []Field {
	return []Field{FieldTitle, FieldYear, FieldGenre, FieldRating}
}

// ParseField resolves a field name.
func ParseField(name string) (Field, error) {
	for i := range fieldTable {
		if fieldTable[i].name == name {
			return Field(i), nil
		}
	}
	return 0, &FieldError{Name: name}
}

// String returns the field name used in criteria keys.
func (f Field) String() string {
	if int(f) >= len(fieldTable) {
		return "unknown"
	}
	return fieldTable[f].name
}

// Kind returns the value kind the field yields.
func (f Field) Kind() metadata.Kind {
	if int(f) >= len(fieldTable) {
		return metadata.KindInvalid
	}
	return fieldTable[f].kind
}

// Value reads the field from m.
func (f Field) Value(m *Movie) metadata.Value {
	if int(f) >= len(fieldTable) {
		return metadata.Value{}
	}
	return fieldTable[f].get(m)
}
