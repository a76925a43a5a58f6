package filter

// Search is a filter directive for one non-nullable field.
// The zero value is a NoSearch.
type Search[T any] struct {
	Kind  Kind
	Value T
}

// NoSearch returns a criterion that leaves the field unconstrained.
func NoSearch[T any]() Search[T] {
	return Search[T]{}
}

// Exact returns a criterion matching rows where the field equals v.
func Exact[T any](v T) Search[T] {
	return Search[T]{Kind: KindExact, Value: v}
}

// Partial returns a criterion matching rows where the field starts with v.
// On non-string fields it behaves like Exact.
func Partial[T any](v T) Search[T] {
	return Search[T]{Kind: KindPartial, Value: v}
}

func (s Search[T]) predicate(col Column) (Predicate, bool) {
	switch s.Kind {
	case KindExact:
		return Predicate{Column: col, Op: OpEq, Value: s.Value}, true
	case KindPartial:
		return partialPredicate(col, s.Value), true
	default:
		return Predicate{}, false
	}
}

// NullableSearch is a filter directive for one nullable field.
// The zero value is a NoSearch.
type NullableSearch[T any] struct {
	Kind  Kind
	Value T
}

// NullableExact returns a criterion matching rows where the field equals v.
func NullableExact[T any](v T) NullableSearch[T] {
	return NullableSearch[T]{Kind: KindExact, Value: v}
}

// NullablePartial returns a criterion matching rows where the field starts with v.
func NullablePartial[T any](v T) NullableSearch[T] {
	return NullableSearch[T]{Kind: KindPartial, Value: v}
}

// IsNull returns a criterion matching rows where the field is NULL.
func IsNull[T any]() NullableSearch[T] {
	return NullableSearch[T]{Kind: KindNull}
}

// NotNull returns a criterion matching rows where the field is not NULL.
func NotNull[T any]() NullableSearch[T] {
	return NullableSearch[T]{Kind: KindNotNull}
}

func (s NullableSearch[T]) predicate(col Column) (Predicate, bool) {
	switch s.Kind {
	case KindExact:
		return Predicate{Column: col, Op: OpEq, Value: s.Value}, true
	case KindPartial:
		return partialPredicate(col, s.Value), true
	case KindNotNull:
		return Predicate{Column: col, Op: OpNotNull}, true
	case KindNull:
		return Predicate{Column: col, Op: OpIsNull}, true
	default:
		return Predicate{}, false
	}
}

// partialPredicate degrades to equality for anything that is not a string.
func partialPredicate(col Column, v any) Predicate {
	if s, ok := v.(string); ok {
		return Predicate{Column: col, Op: OpPrefix, Value: s}
	}
	return Predicate{Column: col, Op: OpEq, Value: v}
}
