package filter

const (
	// WildcardSuffix marks a value as a prefix match, e.g. "Comp*".
	WildcardSuffix = "*"
	// NullToken selects rows where a nullable column is NULL.
	NullToken = "null"
	// NotNullToken selects rows where a nullable column is NOT NULL.
	NotNullToken = "~null"
)

// Kind tags which directive a criterion carries.
type Kind uint8

const (
	// KindNoSearch excludes the field from filtering.
	KindNoSearch Kind = iota
	// KindExact requires the field to equal the value.
	KindExact
	// KindPartial requires a string field to start with the value.
	KindPartial
	// KindNotNull requires a nullable field to be non-null.
	KindNotNull
	// KindNull requires a nullable field to be null.
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindNoSearch:
		return "no_search"
	case KindExact:
		return "exact"
	case KindPartial:
		return "partial"
	case KindNotNull:
		return "not_null"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Op is the comparison a compiled predicate applies.
type Op uint8

const (
	OpEq Op = iota + 1
	OpPrefix
	OpIsNull
	OpNotNull
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpPrefix:
		return "prefix"
	case OpIsNull:
		return "is_null"
	case OpNotNull:
		return "not_null"
	default:
		return "unknown"
	}
}
