package schema

import (
	"fmt"

	"github.com/prebid/openrtb-codec/openrtb2"
)

func owner[E any](obj any) bool {
	_, ok := obj.(*E)
	return ok
}

func entityOf[E any](obj any) *E {
	e, ok := obj.(*E)
	if !ok {
		panic(fmt.Sprintf("schema: field bound to %T used with %T", e, obj))
	}
	return e
}

func apply(f Field, opts []Option) Field {
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func errValue(name string, want ScalarType, v any) error {
	return fmt.Errorf("schema: field %q holds %s values, got %T", name, want, v)
}

// String declares a string attribute.
func String[E any](name string, scope Scope, get func(*E) **string, opts ...Option) Field {
	return apply(Field{
		name:  name,
		scope: scope,
		kind:  KindScalar,
		typ:   StringType,
		owns:  owner[E],
		isSet: func(obj any) bool { return *get(entityOf[E](obj)) != nil },
		get:   scalarGetter(get, func(s string) any { return s }),
		set: func(obj any, v any) error {
			s, ok := v.(string)
			if !ok {
				return errValue(name, StringType, v)
			}
			*get(entityOf[E](obj)) = &s
			return nil
		},
	}, opts)
}

// Int declares an integer attribute without a domain.
func Int[E any, T ~int64](name string, scope Scope, get func(*E) **T, opts ...Option) Field {
	return apply(intField(name, scope, KindScalar, nil, get), opts)
}

// Float declares a floating point attribute.
func Float[E any](name string, scope Scope, get func(*E) **float64, opts ...Option) Field {
	return apply(Field{
		name:  name,
		scope: scope,
		kind:  KindScalar,
		typ:   FloatType,
		owns:  owner[E],
		isSet: func(obj any) bool { return *get(entityOf[E](obj)) != nil },
		get:   scalarGetter(get, func(f float64) any { return f }),
		set: func(obj any, v any) error {
			var f float64
			switch x := v.(type) {
			case float64:
				f = x
			case int64:
				f = float64(x)
			default:
				return errValue(name, FloatType, v)
			}
			*get(entityOf[E](obj)) = &f
			return nil
		},
	}, opts)
}

// Enum declares an integer attribute restricted to a domain.
func Enum[E any, T ~int64](name string, scope Scope, domain *Domain, get func(*E) **T, opts ...Option) Field {
	return apply(intField(name, scope, KindEnum, domain, get), opts)
}

// StringEnum declares a string attribute restricted to a domain.
func StringEnum[E any](name string, scope Scope, domain *Domain, get func(*E) **string, opts ...Option) Field {
	f := String(name, scope, get, opts...)
	f.kind = KindEnum
	f.domain = domain
	return f
}

func intField[E any, T ~int64](name string, scope Scope, kind Kind, domain *Domain, get func(*E) **T) Field {
	return Field{
		name:   name,
		scope:  scope,
		kind:   kind,
		typ:    IntType,
		domain: domain,
		owns:   owner[E],
		isSet:  func(obj any) bool { return *get(entityOf[E](obj)) != nil },
		get:    scalarGetter(get, func(t T) any { return int64(t) }),
		set: func(obj any, v any) error {
			i, ok := v.(int64)
			if !ok {
				return errValue(name, IntType, v)
			}
			t := T(i)
			*get(entityOf[E](obj)) = &t
			return nil
		},
	}
}

func scalarGetter[E any, T any](get func(*E) **T, box func(T) any) func(obj any) (any, bool) {
	return func(obj any) (any, bool) {
		p := *get(entityOf[E](obj))
		if p == nil {
			return nil, false
		}
		return box(*p), true
	}
}

// Strings declares an array of strings.
func Strings[E any](name string, scope Scope, get func(*E) *[]string, opts ...Option) Field {
	return apply(Field{
		name:  name,
		scope: scope,
		kind:  KindScalarArray,
		typ:   StringType,
		owns:  owner[E],
		isSet: func(obj any) bool { return *get(entityOf[E](obj)) != nil },
		get:   arrayGetter(get, func(s string) any { return s }),
		set: func(obj any, v any) error {
			values, ok := v.([]any)
			if !ok {
				return errValue(name, StringType, v)
			}
			out := make([]string, len(values))
			for i, value := range values {
				s, ok := value.(string)
				if !ok {
					return errValue(name, StringType, value)
				}
				out[i] = s
			}
			*get(entityOf[E](obj)) = out
			return nil
		},
	}, opts)
}

// Ints declares an array of integers without a domain.
func Ints[E any, T ~int64](name string, scope Scope, get func(*E) *[]T, opts ...Option) Field {
	return apply(intsField(name, scope, KindScalarArray, nil, get), opts)
}

// Enums declares an array of integers restricted to a domain.
func Enums[E any, T ~int64](name string, scope Scope, domain *Domain, get func(*E) *[]T, opts ...Option) Field {
	return apply(intsField(name, scope, KindEnumArray, domain, get), opts)
}

func intsField[E any, T ~int64](name string, scope Scope, kind Kind, domain *Domain, get func(*E) *[]T) Field {
	return Field{
		name:   name,
		scope:  scope,
		kind:   kind,
		typ:    IntType,
		domain: domain,
		owns:   owner[E],
		isSet:  func(obj any) bool { return *get(entityOf[E](obj)) != nil },
		get:    arrayGetter(get, func(t T) any { return int64(t) }),
		set: func(obj any, v any) error {
			values, ok := v.([]any)
			if !ok {
				return errValue(name, IntType, v)
			}
			out := make([]T, len(values))
			for i, value := range values {
				n, ok := value.(int64)
				if !ok {
					return errValue(name, IntType, value)
				}
				out[i] = T(n)
			}
			*get(entityOf[E](obj)) = out
			return nil
		},
	}
}

func arrayGetter[E any, T any](get func(*E) *[]T, box func(T) any) func(obj any) (any, bool) {
	return func(obj any) (any, bool) {
		s := *get(entityOf[E](obj))
		if s == nil {
			return nil, false
		}
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = box(v)
		}
		return out, true
	}
}

// Child declares a nested object.
func Child[E any, C any](name string, scope Scope, entity EntityType, get func(*E) **C, opts ...Option) Field {
	return apply(Field{
		name:   name,
		scope:  scope,
		kind:   KindObject,
		entity: entity,
		owns:   owner[E],
		isSet:  func(obj any) bool { return *get(entityOf[E](obj)) != nil },
		child: func(obj any) (any, bool) {
			c := *get(entityOf[E](obj))
			if c == nil {
				return nil, false
			}
			return c, true
		},
		newChild: func(obj any) any {
			c := new(C)
			*get(entityOf[E](obj)) = c
			return c
		},
	}, opts)
}

// Children declares an array of nested objects.
func Children[E any, C any](name string, scope Scope, entity EntityType, get func(*E) *[]C, opts ...Option) Field {
	return apply(Field{
		name:   name,
		scope:  scope,
		kind:   KindObjectArray,
		entity: entity,
		owns:   owner[E],
		isSet:  func(obj any) bool { return *get(entityOf[E](obj)) != nil },
		children: func(obj any) ([]any, bool) {
			s := *get(entityOf[E](obj))
			if s == nil {
				return nil, false
			}
			out := make([]any, len(s))
			for i := range s {
				out[i] = &s[i]
			}
			return out, true
		},
		reset: func(obj any, capacity int) {
			*get(entityOf[E](obj)) = make([]C, 0, capacity)
		},
		appendTo: func(obj any) any {
			s := get(entityOf[E](obj))
			*s = append(*s, *new(C))
			return &(*s)[len(*s)-1]
		},
	}, opts)
}

// Custom declares an exchange-specific attribute for use with Extend. It has no
// typed struct field: the decoder checks its scope, type and domain, then keeps
// the raw JSON in the entity's Unknown map under name. Object kinds are checked
// for shape only.
func Custom(name string, scope Scope, kind Kind, typ ScalarType, domain *Domain, opts ...Option) Field {
	return apply(Field{
		name:   name,
		scope:  scope,
		kind:   kind,
		typ:    typ,
		domain: domain,
		custom: true,
		owns: func(obj any) bool {
			_, ok := obj.(openrtb2.Extensible)
			return ok
		},
		isSet: func(obj any) bool {
			e, ok := obj.(openrtb2.Extensible)
			if !ok {
				return false
			}
			_, ok = e.Lossless().Unknown[name]
			return ok
		},
	}, opts)
}
