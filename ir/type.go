package ir

// Type tags the kind of a Node. The four kinds are closed: every
// operation on nodes matches all of them exhaustively.
type Type int

const (
	IntegerType Type = iota
	BytesType
	ListType
	DictType
)

func (t Type) String() string {
	switch t {
	case IntegerType:
		return "integer"
	case BytesType:
		return "string"
	case ListType:
		return "list"
	case DictType:
		return "dictionary"
	default:
		return "<invalid type>"
	}
}

// IsContainer reports whether the type holds child values.
func (t Type) IsContainer() bool {
	return t == ListType || t == DictType
}

// IsPrimitive reports whether the type is a leaf kind.
func (t Type) IsPrimitive() bool {
	return t == IntegerType || t == BytesType
}
