package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Domain is the set of values an Enum or EnumArray field recognizes. A value
// outside the domain is still accepted by the codec, which only warns about it.
type Domain struct {
	ints    map[int64]struct{}
	strs    map[string]struct{}
	lo, hi  int64
	ranged  bool
	ordered []string
}

// OneOf builds a domain from a list of integer codes.
func OneOf(values ...int64) *Domain {
	d := &Domain{ints: make(map[int64]struct{}, len(values))}
	for _, v := range values {
		d.ints[v] = struct{}{}
	}
	return d
}

// OneOfStrings builds a domain from a list of string codes.
func OneOfStrings(values ...string) *Domain {
	d := &Domain{strs: make(map[string]struct{}, len(values))}
	for _, v := range values {
		d.strs[v] = struct{}{}
		d.ordered = append(d.ordered, fmt.Sprintf("%q", v))
	}
	return d
}

// Between builds a domain of every integer in [lo, hi].
func Between(lo, hi int64) *Domain {
	return &Domain{lo: lo, hi: hi, ranged: true}
}

// AtLeast builds a domain of every integer greater than or equal to lo.
func AtLeast(lo int64) *Domain {
	return Between(lo, math.MaxInt64)
}

// Codes lifts typed enumeration constants into int64 codes for OneOf.
func Codes[T ~int | ~int8 | ~int16 | ~int32 | ~int64](values ...T) []int64 {
	codes := make([]int64, len(values))
	for i, v := range values {
		codes[i] = int64(v)
	}
	return codes
}

// Contains reports whether v, a string or int64, belongs to the domain. A nil
// domain contains everything.
func (d *Domain) Contains(v any) bool {
	if d == nil {
		return true
	}
	switch x := v.(type) {
	case int64:
		if d.ranged {
			return x >= d.lo && x <= d.hi
		}
		_, ok := d.ints[x]
		return ok
	case string:
		_, ok := d.strs[x]
		return ok
	default:
		return false
	}
}

func (d *Domain) String() string {
	switch {
	case d == nil:
		return "any"
	case d.ranged && d.hi == math.MaxInt64:
		return fmt.Sprintf(">= %d", d.lo)
	case d.ranged:
		return fmt.Sprintf("[%d, %d]", d.lo, d.hi)
	case d.strs != nil:
		return "{" + strings.Join(d.ordered, ", ") + "}"
	}
	codes := make([]int64, 0, len(d.ints))
	for v := range d.ints {
		codes = append(codes, v)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	parts := make([]string, len(codes))
	for i, v := range codes {
		parts[i] = fmt.Sprint(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
