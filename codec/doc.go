// Package codec converts between OpenRTB 2.x JSON and the objects of package
// openrtb2, driven by the field tables of package schema.
//
// The Decoder never rejects a well-formed JSON object: missing required
// attributes, values of the wrong type, unknown enum codes and broken cross-field
// rules are all returned as Findings next to the decoded graph. Attributes the
// tables do not know, and values that could not be typed, are kept raw in each
// object's Extension and written back by the Encoder, so a decode followed by an
// encode preserves every attribute of the input.
package codec
