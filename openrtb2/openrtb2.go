// Package openrtb2 holds the in-memory shape of the OpenRTB 2.x objects.
//
// Every scalar attribute is a pointer and every sequence a slice, so that an
// attribute which was never set (nil) can be told apart from one carrying a zero
// value. Nothing in this package validates or defaults values: that is the job of
// the schema and codec packages, which encode and decode these structs.
package openrtb2

import "encoding/json"

// Extension carries the lossless part of an object: the opaque "ext" payload and
// every attribute the codec did not recognize. It is embedded in every object.
type Extension struct {
	// Ext is the exchange-specific "ext" object. It is never parsed by the codec.
	Ext json.RawMessage

	// Unknown holds raw JSON values keyed by wire name, for attributes that are not
	// part of the object's field table or that could not be decoded into their
	// typed field.
	Unknown map[string]json.RawMessage
}

// Lossless returns the receiver. Embedding promotes it, so every object satisfies
// Extensible.
func (e *Extension) Lossless() *Extension {
	return e
}

// SetUnknown stores a raw value under the given wire name.
func (e *Extension) SetUnknown(name string, raw json.RawMessage) {
	if e.Unknown == nil {
		e.Unknown = make(map[string]json.RawMessage)
	}
	e.Unknown[name] = raw
}

// Extensible is implemented by every OpenRTB object through the embedded Extension.
type Extensible interface {
	Lossless() *Extension
}
