package schema

import (
	"encoding/json"
	"fmt"

	"github.com/prebid/openrtb-codec/openrtb2"
)

// Scope classifies an attribute as optional, recommended or required.
type Scope int

const (
	Optional Scope = iota
	Recommended
	Required
)

func (s Scope) String() string {
	switch s {
	case Optional:
		return "optional"
	case Recommended:
		return "recommended"
	case Required:
		return "required"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Kind is the shape of an attribute's wire value.
type Kind int

const (
	KindScalar Kind = iota
	KindEnum
	KindObject
	KindScalarArray
	KindEnumArray
	KindObjectArray
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindScalarArray:
		return "scalar array"
	case KindEnumArray:
		return "enum array"
	case KindObjectArray:
		return "object array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsArray reports whether values of this kind are JSON arrays.
func (k Kind) IsArray() bool {
	return k == KindScalarArray || k == KindEnumArray || k == KindObjectArray
}

// ScalarType is the JSON type of a scalar, or of each element of a scalar array.
// Object kinds have no scalar type.
type ScalarType int

const (
	NoType ScalarType = iota
	StringType
	IntType
	FloatType
)

func (t ScalarType) String() string {
	switch t {
	case StringType:
		return "string"
	case IntType:
		return "integer"
	case FloatType:
		return "number"
	default:
		return "none"
	}
}

// Field describes one attribute of an entity: its wire name, scope, value shape,
// default and the accessors binding it to a struct field. A Field is immutable
// once built and is safe for concurrent use.
type Field struct {
	name     string
	scope    Scope
	kind     Kind
	typ      ScalarType
	domain   *Domain
	def      any
	entity   EntityType
	minItems int
	custom   bool

	owns  func(obj any) bool
	isSet func(obj any) bool

	// Scalar, enum and their arrays.
	get func(obj any) (any, bool)
	set func(obj any, v any) error

	// Objects and object arrays.
	child    func(obj any) (any, bool)
	newChild func(obj any) any
	children func(obj any) ([]any, bool)
	reset    func(obj any, capacity int)
	appendTo func(obj any) any
}

// Option adjusts a Field while it is being declared.
type Option func(*Field)

// WithDefault sets the value a decoder assigns when the attribute is absent. The
// value must be a string, int64 or float64 matching the field's type.
func WithDefault(v any) Option {
	return func(f *Field) {
		f.def = v
	}
}

// MinItems sets the minimum length of a required array.
func MinItems(n int) Option {
	return func(f *Field) {
		f.minItems = n
	}
}

func (f Field) Name() string       { return f.name }
func (f Field) Scope() Scope       { return f.scope }
func (f Field) Kind() Kind         { return f.kind }
func (f Field) Type() ScalarType   { return f.typ }
func (f Field) Domain() *Domain    { return f.domain }
func (f Field) Default() any       { return f.def }
func (f Field) Entity() EntityType { return f.entity }
func (f Field) MinItems() int      { return f.minItems }

// Custom reports whether the field was declared through Custom and keeps its
// value as raw JSON in the entity's Unknown map.
func (f Field) Custom() bool { return f.custom }

func (f Field) String() string {
	return fmt.Sprintf("%s (%s %s)", f.name, f.scope, f.kind)
}

// Owns reports whether obj is an entity this field can be read from and written to.
func (f Field) Owns(obj any) bool {
	return f.owns != nil && f.owns(obj)
}

// IsSet reports whether the attribute is present on obj.
func (f Field) IsSet(obj any) bool {
	return f.isSet(obj)
}

// Value returns the value of a scalar or enum field as a string, int64 or
// float64, and for scalar and enum arrays a []any of those.
func (f Field) Value(obj any) (any, bool) {
	if f.get == nil {
		return nil, false
	}
	return f.get(obj)
}

// SetValue assigns a value of the shape Value returns.
func (f Field) SetValue(obj any, v any) error {
	if f.set == nil {
		return fmt.Errorf("schema: field %q does not hold scalar values", f.name)
	}
	return f.set(obj, v)
}

// Child returns the nested entity of an object field.
func (f Field) Child(obj any) (any, bool) {
	if f.child == nil {
		return nil, false
	}
	return f.child(obj)
}

// NewChild allocates the nested entity of an object field, assigns it and returns it.
func (f Field) NewChild(obj any) any {
	return f.newChild(obj)
}

// Children returns pointers to the elements of an object array field.
func (f Field) Children(obj any) ([]any, bool) {
	if f.children == nil {
		return nil, false
	}
	return f.children(obj)
}

// ResetChildren replaces an object array field with an empty, non-nil slice that
// can hold capacity elements without reallocating.
func (f Field) ResetChildren(obj any, capacity int) {
	f.reset(obj, capacity)
}

// AppendChild appends a zero element to an object array field and returns a
// pointer to it. The pointer stays valid until the slice grows past the capacity
// given to ResetChildren.
func (f Field) AppendChild(obj any) any {
	return f.appendTo(obj)
}

// Raw returns the raw JSON of a Custom field.
func (f Field) Raw(obj any) (json.RawMessage, bool) {
	e, ok := obj.(openrtb2.Extensible)
	if !f.custom || !ok {
		return nil, false
	}
	raw, ok := e.Lossless().Unknown[f.name]
	return raw, ok
}

// SetRaw stores the raw JSON of a Custom field.
func (f Field) SetRaw(obj any, raw json.RawMessage) {
	if e, ok := obj.(openrtb2.Extensible); ok && f.custom {
		e.Lossless().SetUnknown(f.name, raw)
	}
}
