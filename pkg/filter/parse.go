package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFunc coerces the text of a query value into a field type.
type ParseFunc[T any] func(string) (T, error)

// ParseSearch decodes one query-parameter value.
// A trailing WildcardSuffix selects a prefix match, anything else is exact.
func ParseSearch[T any](raw string, parse ParseFunc[T]) (Search[T], error) {
	kind, text := splitWildcard(raw)

	v, err := parse(text)
	if err != nil {
		return Search[T]{}, fmt.Errorf("%w: %q: %v", ErrFormat, raw, err)
	}

	return Search[T]{Kind: kind, Value: v}, nil
}

// ParseNullableSearch decodes one query-parameter value for a nullable field.
// NullToken and NotNullToken are checked before the exact/prefix rules.
func ParseNullableSearch[T any](raw string, parse ParseFunc[T]) (NullableSearch[T], error) {
	switch raw {
	case NullToken:
		return IsNull[T](), nil
	case NotNullToken:
		return NotNull[T](), nil
	}

	s, err := ParseSearch(raw, parse)
	if err != nil {
		return NullableSearch[T]{}, err
	}

	return NullableSearch[T]{Kind: s.Kind, Value: s.Value}, nil
}

func splitWildcard(raw string) (Kind, string) {
	if strings.HasSuffix(raw, WildcardSuffix) {
		return KindPartial, strings.TrimSuffix(raw, WildcardSuffix)
	}
	return KindExact, raw
}

// String accepts any text.
func String(s string) (string, error) {
	return s, nil
}

// Uint64 parses a base-10 unsigned 64-bit integer.
func Uint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Uint32 parses a base-10 unsigned 32-bit integer.
func Uint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
