package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/buger/jsonparser"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/logger"
	"github.com/prebid/openrtb-codec/metrics"
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/ortb"
	"github.com/prebid/openrtb-codec/schema"
	"github.com/prebid/openrtb-codec/util/jsonutil"
)

// Decoder reads OpenRTB JSON into openrtb2 objects, checking every attribute
// against the field tables as it goes.
//
// Decoding is lenient. Only input that is not a JSON object fails with an
// errortypes.ParseError; every other deviation is reported as a Finding and the
// offending raw value is kept, so that encoding the result reproduces the input.
// A Decoder is safe for concurrent use.
type Decoder struct {
	options
}

func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{options: newOptions(opts)}
}

var defaultDecoder = NewDecoder()

// DecodeBidRequest decodes a bid request with the default settings.
func DecodeBidRequest(data []byte) (*openrtb2.BidRequest, Findings, error) {
	req := &openrtb2.BidRequest{}
	findings, err := defaultDecoder.DecodeInto(data, req)
	if err != nil {
		return nil, nil, err
	}
	return req, findings, nil
}

// DecodeBidResponse decodes a bid response with the default settings.
func DecodeBidResponse(data []byte) (*openrtb2.BidResponse, Findings, error) {
	resp := &openrtb2.BidResponse{}
	findings, err := defaultDecoder.DecodeInto(data, resp)
	if err != nil {
		return nil, nil, err
	}
	return resp, findings, nil
}

// Decode allocates an object of type t and decodes data into it.
func (d *Decoder) Decode(t schema.EntityType, data []byte) (openrtb2.Extensible, Findings, error) {
	obj, err := d.schema.New(t)
	if err != nil {
		return nil, nil, err
	}
	findings, err := d.decode(t, data, obj)
	if err != nil {
		return nil, nil, err
	}
	return obj, findings, nil
}

// DecodeInto decodes data into v, which must be a pointer to a zero openrtb2
// object.
func (d *Decoder) DecodeInto(data []byte, v openrtb2.Extensible) (Findings, error) {
	t, ok := schema.TypeOf(v)
	if !ok || isNil(v) {
		return nil, fmt.Errorf("codec: cannot decode into %T", v)
	}
	return d.decode(t, data, v)
}

func (d *Decoder) decode(t schema.EntityType, data []byte, obj openrtb2.Extensible) (Findings, error) {
	start := time.Now()
	labels := metrics.Labels{Operation: metrics.OperationDecode, Entity: string(t), Status: metrics.StatusOK}

	findings, err := d.run(t, data, obj)
	switch {
	case err != nil:
		labels.Status = metrics.StatusFailed
		logger.Debugf("codec: decoding %s failed: %v", t, err)
	case findings.HasErrors():
		labels.Status = metrics.StatusInvalid
	}

	if d.metricsEngine != nil {
		d.metricsEngine.RecordOperation(labels)
		d.metricsEngine.RecordOperationTime(labels, time.Since(start))
		d.metricsEngine.RecordPayloadSize(labels, len(data))
	}
	if err != nil {
		return nil, err
	}
	return findings, nil
}

func (d *Decoder) run(t schema.EntityType, data []byte, obj openrtb2.Extensible) (Findings, error) {
	ent, ok := d.schema.Entity(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownEntity, t)
	}
	if !json.Valid(data) {
		return nil, &errortypes.ParseError{Message: "input is not valid JSON"}
	}
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, &errortypes.ParseError{Message: "input is not valid JSON", Cause: err}
	}
	if dataType != jsonparser.Object {
		return nil, &errortypes.ParseError{Message: fmt.Sprintf("expected a JSON object, got %s", jsonutil.TypeName(dataType))}
	}

	s := &decodeState{options: &d.options}
	if err := s.object(ent, "", value, obj); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", t, err)
	}
	return s.findings, nil
}

// decodeState carries the findings of a single call.
type decodeState struct {
	*options
	findings Findings
}

func (s *decodeState) add(t schema.EntityType, f *errortypes.Finding) {
	s.findings = append(s.findings, f)
	if s.metricsEngine != nil {
		s.metricsEngine.RecordFinding(metrics.FindingLabels{Entity: string(t), Kind: f.Kind, Severity: f.Sev})
	}
}

type member struct {
	value    []byte
	dataType jsonparser.ValueType
}

// members collects the attributes of an object. Of repeated names the last one
// wins. Names arrive unescaped from ObjectEach. Names jsonparser cannot unescape,
// such as lone UTF-16 surrogates, are read again with encoding/json, which
// replaces them with U+FFFD.
func members(data []byte) map[string]member {
	out := make(map[string]member)
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		out[string(key)] = member{value: value, dataType: dataType}
		return nil
	})
	if err == nil {
		return out
	}

	var raw map[string]json.RawMessage
	if json.Unmarshal(data, &raw) != nil {
		return out
	}
	out = make(map[string]member, len(raw))
	for name, v := range raw {
		value, dataType, _, err := jsonparser.Get(v)
		if err != nil {
			continue
		}
		out[name] = member{value: value, dataType: dataType}
	}
	return out
}

// object decodes the attributes of one entity in field table order, then keeps
// everything else in its Extension.
func (s *decodeState) object(ent *schema.Entity, path string, data []byte, obj openrtb2.Extensible) error {
	attrs := members(data)
	lossless := obj.Lossless()

	if m, ok := attrs[schema.ExtKey]; ok {
		lossless.Ext = jsonutil.RawValue(m.value, m.dataType)
		delete(attrs, schema.ExtKey)
	}

	for _, f := range ent.Fields {
		fieldPath := schema.Join(path, f.Name())
		m, ok := attrs[f.Name()]
		if !ok {
			s.absent(ent.Type, f, fieldPath, obj)
			continue
		}
		delete(attrs, f.Name())
		if err := s.field(ent.Type, f, fieldPath, m, obj); err != nil {
			return err
		}
	}

	for name, m := range attrs {
		lossless.SetUnknown(name, jsonutil.RawValue(m.value, m.dataType))
	}

	if s.semanticChecks {
		for _, f := range ortb.Check(path, obj) {
			s.add(ent.Type, f)
		}
	}
	return nil
}

func (s *decodeState) absent(t schema.EntityType, f schema.Field, path string, obj openrtb2.Extensible) {
	switch f.Scope() {
	case schema.Required:
		s.add(t, errortypes.NewMissingRequired(path, fmt.Sprintf("required %s %q is missing", t, f.Name())))
		return
	case schema.Recommended:
		if s.recommendedWarnings {
			s.add(t, errortypes.NewMissingRecommended(path, fmt.Sprintf("recommended %s %q is missing", t, f.Name())))
		}
	}

	def := f.Default()
	if def == nil || !s.applyDefaults {
		return
	}
	if f.Custom() {
		raw, err := appendScalar(nil, path, def)
		if err != nil {
			logger.Warnf("codec: default of %s.%s cannot be encoded: %v", t, f.Name(), err)
			return
		}
		f.SetRaw(obj, raw)
		return
	}
	if err := f.SetValue(obj, def); err != nil {
		logger.Warnf("codec: default of %s.%s not applied: %v", t, f.Name(), err)
	}
}

func (s *decodeState) field(t schema.EntityType, f schema.Field, path string, m member, obj openrtb2.Extensible) error {
	if f.Custom() {
		f.SetRaw(obj, jsonutil.RawValue(m.value, m.dataType))
	}

	switch f.Kind() {
	case schema.KindScalar, schema.KindEnum:
		v, ok := s.scalar(t, f, path, m)
		if !ok {
			s.keep(f, obj, m)
			return nil
		}
		s.checkDomain(t, f, path, v)
		if !f.Custom() {
			return f.SetValue(obj, v)
		}

	case schema.KindScalarArray, schema.KindEnumArray:
		values, ok := s.scalars(t, f, path, m)
		if !ok {
			s.keep(f, obj, m)
			return nil
		}
		for i, v := range values {
			s.checkDomain(t, f, schema.Index(path, i), v)
		}
		s.checkItems(t, f, path, len(values))
		if !f.Custom() {
			return f.SetValue(obj, values)
		}

	case schema.KindObject:
		if m.dataType != jsonparser.Object {
			s.mismatch(t, f, path, "object", m)
			s.keep(f, obj, m)
			return nil
		}
		if f.Custom() {
			return nil
		}
		ent, ok := s.schema.Entity(f.Entity())
		if !ok {
			return fmt.Errorf("%w: %s", schema.ErrUnknownEntity, f.Entity())
		}
		return s.object(ent, path, m.value, f.NewChild(obj).(openrtb2.Extensible))

	case schema.KindObjectArray:
		return s.objects(t, f, path, m, obj)
	}
	return nil
}

// keep stores a value which could not be decoded into its typed field, so that
// it is written back unchanged.
func (s *decodeState) keep(f schema.Field, obj openrtb2.Extensible, m member) {
	if !f.Custom() {
		obj.Lossless().SetUnknown(f.Name(), jsonutil.RawValue(m.value, m.dataType))
	}
}

// objects decodes an array of entities. An array holding anything but objects
// is kept raw in Unknown, like a scalar array with a bad element, so that it is
// written back unchanged.
func (s *decodeState) objects(t schema.EntityType, f schema.Field, path string, m member, obj openrtb2.Extensible) error {
	if m.dataType != jsonparser.Array {
		s.mismatch(t, f, path, "array", m)
		s.keep(f, obj, m)
		return nil
	}

	elements, err := arrayElements(m.value)
	if err != nil {
		s.mismatch(t, f, path, "array", m)
		s.keep(f, obj, m)
		return nil
	}

	valid := true
	for i, elem := range elements {
		if elem.dataType != jsonparser.Object {
			s.mismatch(t, f, schema.Index(path, i), "object", elem)
			valid = false
		}
	}
	if !valid {
		s.keep(f, obj, m)
		return nil
	}
	s.checkItems(t, f, path, len(elements))
	if f.Custom() {
		return nil
	}

	ent, ok := s.schema.Entity(f.Entity())
	if !ok {
		return fmt.Errorf("%w: %s", schema.ErrUnknownEntity, f.Entity())
	}
	f.ResetChildren(obj, len(elements))
	for i, elem := range elements {
		child := f.AppendChild(obj).(openrtb2.Extensible)
		if err := s.object(ent, schema.Index(path, i), elem.value, child); err != nil {
			return err
		}
	}
	return nil
}

func arrayElements(data []byte) ([]member, error) {
	var elements []member
	var failed error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil {
			failed = err
			return
		}
		elements = append(elements, member{value: value, dataType: dataType})
	})
	if err == nil {
		err = failed
	}
	return elements, err
}

func (s *decodeState) scalar(t schema.EntityType, f schema.Field, path string, m member) (any, bool) {
	v, ok := parseScalar(f.Type(), m.value, m.dataType)
	if !ok {
		s.mismatch(t, f, path, f.Type().String(), m)
	}
	return v, ok
}

func (s *decodeState) scalars(t schema.EntityType, f schema.Field, path string, m member) ([]any, bool) {
	if m.dataType != jsonparser.Array {
		s.mismatch(t, f, path, "array", m)
		return nil, false
	}
	elements, err := arrayElements(m.value)
	if err != nil {
		s.mismatch(t, f, path, "array", m)
		return nil, false
	}

	values := make([]any, 0, len(elements))
	ok := true
	for i, elem := range elements {
		v, valid := parseScalar(f.Type(), elem.value, elem.dataType)
		if !valid {
			s.mismatch(t, f, schema.Index(path, i), f.Type().String(), elem)
			ok = false
			continue
		}
		values = append(values, v)
	}
	return values, ok
}

func (s *decodeState) mismatch(t schema.EntityType, f schema.Field, path, want string, got member) {
	s.add(t, errortypes.NewTypeMismatch(path, fmt.Sprintf("expected %s, got %s", want, describe(got)), f.Scope() == schema.Required))
}

func (s *decodeState) checkDomain(t schema.EntityType, f schema.Field, path string, v any) {
	if f.Kind() != schema.KindEnum && f.Kind() != schema.KindEnumArray {
		return
	}
	if !f.Domain().Contains(v) {
		s.add(t, errortypes.NewUnknownEnumValue(path, fmt.Sprintf("%v is not one of %s", v, f.Domain())))
	}
}

func (s *decodeState) checkItems(t schema.EntityType, f schema.Field, path string, n int) {
	if want := f.MinItems(); n < want {
		s.add(t, errortypes.NewMissingRequired(path, fmt.Sprintf("%s %q needs at least %d element(s), got %d", t, f.Name(), want, n)))
	}
}

func describe(m member) string {
	if m.dataType == jsonparser.Number {
		return "number " + string(m.value)
	}
	return jsonutil.TypeName(m.dataType)
}

// parseScalar converts a JSON value to the string, int64 or float64 held by a
// field of type typ. Integral numbers such as 300.0 or 3e2 are accepted as
// integers.
func parseScalar(typ schema.ScalarType, value []byte, dataType jsonparser.ValueType) (any, bool) {
	switch typ {
	case schema.StringType:
		if dataType != jsonparser.String {
			return nil, false
		}
		s, err := jsonutil.ParseString(value)
		return s, err == nil
	case schema.IntType:
		if dataType != jsonparser.Number {
			return nil, false
		}
		if n, err := jsonparser.ParseInt(value); err == nil {
			return n, true
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, false
		}
		return int64(f), true
	case schema.FloatType:
		if dataType != jsonparser.Number {
			return nil, false
		}
		f, err := jsonparser.ParseFloat(value)
		return f, err == nil
	}
	return nil, false
}
