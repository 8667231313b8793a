package ptrutil

// ToPtr returns a pointer to a copy of v. It is the usual way to fill the optional
// fields of the openrtb2 structs.
func ToPtr[T any](v T) *T {
	return &v
}

// ValueOrDefault dereferences v, returning the zero value for nil.
func ValueOrDefault[T any](v *T) T {
	if v != nil {
		return *v
	}

	var def T
	return def
}
