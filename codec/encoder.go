package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/logger"
	"github.com/prebid/openrtb-codec/metrics"
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/schema"
	"github.com/prebid/openrtb-codec/util/jsonutil"
)

// Encoder writes OpenRTB objects as compact JSON.
//
// Attributes come out in field table order, followed by "ext" and then by the
// unknown attributes sorted by name. Unset attributes are omitted and nothing is
// defaulted, so that decoding the output yields the same graph. An Encoder holds
// no state between calls and is safe for concurrent use.
type Encoder struct {
	options
}

func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{options: newOptions(opts)}
}

var defaultEncoder = NewEncoder()

// Encode writes v with the default OpenRTB tables.
func Encode(v any) (json.RawMessage, error) {
	return defaultEncoder.Encode(v)
}

// Encode writes v, which must be a pointer to one of the openrtb2 object types.
func (e *Encoder) Encode(v any) (json.RawMessage, error) {
	t, ok := schema.TypeOf(v)
	if !ok {
		return nil, fmt.Errorf("codec: cannot encode %T", v)
	}
	return e.EncodeEntity(t, v.(openrtb2.Extensible))
}

// EncodeEntity writes v as an object of type t.
func (e *Encoder) EncodeEntity(t schema.EntityType, v openrtb2.Extensible) (json.RawMessage, error) {
	start := time.Now()
	labels := metrics.Labels{Operation: metrics.OperationEncode, Entity: string(t), Status: metrics.StatusOK}

	out, err := e.encode(t, v)
	if err != nil {
		labels.Status = metrics.StatusFailed
		logger.Debugf("codec: encoding %s failed: %v", t, err)
	}

	if e.metricsEngine != nil {
		e.metricsEngine.RecordOperation(labels)
		e.metricsEngine.RecordOperationTime(labels, time.Since(start))
		if err == nil {
			e.metricsEngine.RecordPayloadSize(labels, len(out))
		}
	}
	return out, err
}

func (e *Encoder) encode(t schema.EntityType, v openrtb2.Extensible) (json.RawMessage, error) {
	ent, ok := e.schema.Entity(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownEntity, t)
	}
	if isNil(v) {
		return nil, fmt.Errorf("codec: cannot encode a nil %s", t)
	}
	if len(ent.Fields) > 0 && !ent.Fields[0].Owns(v) {
		return nil, fmt.Errorf("codec: %T is not a %s", v, t)
	}
	buf, err := appendObject(make([]byte, 0, 512), e.schema, ent, "", v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func appendKey(buf []byte, first bool, name string) []byte {
	if !first {
		buf = append(buf, ',')
	}
	buf = jsonutil.AppendString(buf, name)
	return append(buf, ':')
}

func appendObject(buf []byte, s *schema.Schema, ent *schema.Entity, path string, obj openrtb2.Extensible) ([]byte, error) {
	var err error
	lossless := obj.Lossless()
	first := true

	buf = append(buf, '{')
	for _, f := range ent.Fields {
		fieldPath := schema.Join(path, f.Name())
		if f.Custom() {
			raw, ok := f.Raw(obj)
			if !ok {
				continue
			}
			buf = appendKey(buf, first, f.Name())
			if buf, err = appendRaw(buf, fieldPath, raw); err != nil {
				return nil, err
			}
			first = false
			continue
		}
		if !f.IsSet(obj) {
			continue
		}
		buf = appendKey(buf, first, f.Name())
		first = false

		switch f.Kind() {
		case schema.KindScalar, schema.KindEnum:
			v, _ := f.Value(obj)
			buf, err = appendScalar(buf, fieldPath, v)
		case schema.KindScalarArray, schema.KindEnumArray:
			v, _ := f.Value(obj)
			buf, err = appendScalars(buf, fieldPath, v.([]any))
		case schema.KindObject:
			child, _ := f.Child(obj)
			buf, err = appendChild(buf, s, f.Entity(), fieldPath, child)
		case schema.KindObjectArray:
			children, _ := f.Children(obj)
			buf = append(buf, '[')
			for i, child := range children {
				if i > 0 {
					buf = append(buf, ',')
				}
				if buf, err = appendChild(buf, s, f.Entity(), schema.Index(fieldPath, i), child); err != nil {
					return nil, err
				}
			}
			buf = append(buf, ']')
		}
		if err != nil {
			return nil, err
		}
	}

	if len(lossless.Ext) > 0 {
		buf = appendKey(buf, first, schema.ExtKey)
		if buf, err = appendRaw(buf, schema.Join(path, schema.ExtKey), lossless.Ext); err != nil {
			return nil, err
		}
		first = false
	}

	for _, name := range unknownNames(ent, obj) {
		buf = appendKey(buf, first, name)
		if buf, err = appendRaw(buf, schema.Join(path, name), lossless.Unknown[name]); err != nil {
			return nil, err
		}
		first = false
	}
	return append(buf, '}'), nil
}

// unknownNames lists the unknown attributes still to be written, sorted. An
// entry shadowed by a typed value, a custom field or "ext" has already been
// written and is skipped.
func unknownNames(ent *schema.Entity, obj openrtb2.Extensible) []string {
	unknown := obj.Lossless().Unknown
	if len(unknown) == 0 {
		return nil
	}
	names := make([]string, 0, len(unknown))
	for name := range unknown {
		if name == schema.ExtKey {
			continue
		}
		if f, ok := ent.Lookup(name); ok && (f.Custom() || f.IsSet(obj)) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func appendChild(buf []byte, s *schema.Schema, t schema.EntityType, path string, child any) ([]byte, error) {
	ent, ok := s.Entity(t)
	if !ok {
		return nil, &errortypes.SerializationError{Path: path, Message: fmt.Sprintf("unknown entity %s", t)}
	}
	obj, ok := child.(openrtb2.Extensible)
	if !ok {
		return nil, &errortypes.SerializationError{Path: path, Message: fmt.Sprintf("%T is not an OpenRTB object", child)}
	}
	return appendObject(buf, s, ent, path, obj)
}

func appendScalar(buf []byte, path string, v any) ([]byte, error) {
	switch v := v.(type) {
	case string:
		return jsonutil.AppendString(buf, v), nil
	case int64:
		return strconv.AppendInt(buf, v, 10), nil
	case float64:
		out, err := jsonutil.AppendFloat(buf, v)
		if err != nil {
			return nil, &errortypes.SerializationError{Path: path, Message: err.Error()}
		}
		return out, nil
	default:
		return nil, &errortypes.SerializationError{Path: path, Message: fmt.Sprintf("unsupported value %T", v)}
	}
}

func appendScalars(buf []byte, path string, values []any) ([]byte, error) {
	var err error
	buf = append(buf, '[')
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ',')
		}
		if buf, err = appendScalar(buf, schema.Index(path, i), v); err != nil {
			return nil, err
		}
	}
	return append(buf, ']'), nil
}

// appendRaw writes an opaque payload compacted. The payload must hold exactly one
// JSON value.
func appendRaw(buf []byte, path string, raw json.RawMessage) ([]byte, error) {
	if !json.Valid(raw) {
		return nil, &errortypes.SerializationError{Path: path, Message: "not a valid JSON value"}
	}
	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return nil, &errortypes.SerializationError{Path: path, Message: err.Error()}
	}
	return append(buf, out.Bytes()...), nil
}
