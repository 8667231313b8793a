// Package schema is the field descriptor table of the OpenRTB 2.x object model.
// Every entity is described by an ordered list of Fields naming its wire
// attributes, their scope, shape, domain and default. The codec is driven
// entirely by these tables.
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/prebid/openrtb-codec/logger"
	"github.com/prebid/openrtb-codec/openrtb2"
)

// EntityType names an OpenRTB object.
type EntityType string

const (
	BidRequest  EntityType = "BidRequest"
	Imp         EntityType = "Imp"
	Banner      EntityType = "Banner"
	Format      EntityType = "Format"
	Video       EntityType = "Video"
	Native      EntityType = "Native"
	PMP         EntityType = "PMP"
	Deal        EntityType = "Deal"
	Site        EntityType = "Site"
	App         EntityType = "App"
	Publisher   EntityType = "Publisher"
	Producer    EntityType = "Producer"
	Content     EntityType = "Content"
	Device      EntityType = "Device"
	Geo         EntityType = "Geo"
	User        EntityType = "User"
	Data        EntityType = "Data"
	Segment     EntityType = "Segment"
	Regs        EntityType = "Regs"
	BidResponse EntityType = "BidResponse"
	SeatBid     EntityType = "SeatBid"
	Bid         EntityType = "Bid"
)

// ExtKey is the wire name of the extension payload. It is handled by the codec
// itself and can not be declared as a field.
const ExtKey = "ext"

var (
	ErrUnknownEntity = errors.New("schema: unknown entity type")
	ErrDuplicateName = errors.New("schema: duplicate field name")
	ErrReservedName  = errors.New("schema: reserved field name")
	ErrFieldOwner    = errors.New("schema: field is bound to another entity")
	ErrFieldEntity   = errors.New("schema: nested entity type is not described")
)

// Entity is the ordered descriptor table of one object.
type Entity struct {
	Type   EntityType
	Fields []Field
	New    func() openrtb2.Extensible

	byName map[string]int
}

func newEntity(t EntityType, alloc func() openrtb2.Extensible, fields ...Field) *Entity {
	e := &Entity{Type: t, Fields: fields, New: alloc, byName: make(map[string]int, len(fields))}
	for i, f := range fields {
		e.byName[f.name] = i
	}
	return e
}

// Lookup finds a field by wire name.
func (e *Entity) Lookup(name string) (Field, bool) {
	i, ok := e.byName[name]
	if !ok {
		return Field{}, false
	}
	return e.Fields[i], true
}

// Schema is a set of entity tables. It is never modified once built, so a single
// Schema can be shared by any number of encoders and decoders.
type Schema struct {
	entities map[EntityType]*Entity
}

var defaultSchema = sync.OnceValue(openRTB)

// Default returns the OpenRTB 2.x schema.
func Default() *Schema {
	return defaultSchema()
}

// Entity returns the table of an entity type.
func (s *Schema) Entity(t EntityType) (*Entity, bool) {
	e, ok := s.entities[t]
	return e, ok
}

// Describe returns the fields of an entity type in table order, or nil for an
// unknown type. The returned slice is a copy.
func (s *Schema) Describe(t EntityType) []Field {
	e, ok := s.entities[t]
	if !ok {
		return nil
	}
	return append([]Field(nil), e.Fields...)
}

// New allocates an empty entity of type t.
func (s *Schema) New(t EntityType) (openrtb2.Extensible, error) {
	e, ok := s.entities[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, t)
	}
	return e.New(), nil
}

// Extend returns a copy of the schema with fields appended to the table of t.
// The receiver is left untouched.
func (s *Schema) Extend(t EntityType, fields ...Field) (*Schema, error) {
	base, ok := s.entities[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, t)
	}

	sample := base.New()
	extended := newEntity(t, base.New, append(append([]Field(nil), base.Fields...), fields...)...)
	if len(extended.byName) != len(extended.Fields) {
		return nil, fmt.Errorf("%w in %s", ErrDuplicateName, t)
	}
	for _, f := range fields {
		if f.name == ExtKey {
			return nil, fmt.Errorf("%w: %s.%s", ErrReservedName, t, f.name)
		}
		if !f.Owns(sample) {
			return nil, fmt.Errorf("%w: %s.%s", ErrFieldOwner, t, f.name)
		}
		if f.kind == KindObject || f.kind == KindObjectArray {
			if _, ok := s.entities[f.entity]; !ok && !f.custom {
				return nil, fmt.Errorf("%w: %s.%s (%s)", ErrFieldEntity, t, f.name, f.entity)
			}
		}
		if f.scope == Required && f.def != nil {
			logger.Warnf("schema: required field %s.%s declares a default which will never be applied", t, f.name)
		}
	}

	next := &Schema{entities: make(map[EntityType]*Entity, len(s.entities))}
	for k, v := range s.entities {
		next.entities[k] = v
	}
	next.entities[t] = extended
	return next, nil
}

// TypeOf maps a pointer to an OpenRTB object to its entity type.
func TypeOf(v any) (EntityType, bool) {
	switch v.(type) {
	case *openrtb2.BidRequest:
		return BidRequest, true
	case *openrtb2.Imp:
		return Imp, true
	case *openrtb2.Banner:
		return Banner, true
	case *openrtb2.Format:
		return Format, true
	case *openrtb2.Video:
		return Video, true
	case *openrtb2.Native:
		return Native, true
	case *openrtb2.PMP:
		return PMP, true
	case *openrtb2.Deal:
		return Deal, true
	case *openrtb2.Site:
		return Site, true
	case *openrtb2.App:
		return App, true
	case *openrtb2.Publisher:
		return Publisher, true
	case *openrtb2.Producer:
		return Producer, true
	case *openrtb2.Content:
		return Content, true
	case *openrtb2.Device:
		return Device, true
	case *openrtb2.Geo:
		return Geo, true
	case *openrtb2.User:
		return User, true
	case *openrtb2.Data:
		return Data, true
	case *openrtb2.Segment:
		return Segment, true
	case *openrtb2.Regs:
		return Regs, true
	case *openrtb2.BidResponse:
		return BidResponse, true
	case *openrtb2.SeatBid:
		return SeatBid, true
	case *openrtb2.Bid:
		return Bid, true
	default:
		return "", false
	}
}

// VisitFunc is called by Walk for every entity of a graph. Returning an error
// stops the walk.
type VisitFunc func(path string, t EntityType, v openrtb2.Extensible) error

// Walk visits v, of type t, and every nested entity below it depth-first in table
// order. The root is visited with an empty path; nested entities get paths like
// "imp[0].banner".
func (s *Schema) Walk(t EntityType, v openrtb2.Extensible, visit VisitFunc) error {
	return s.walk("", t, v, visit)
}

func (s *Schema) walk(path string, t EntityType, v openrtb2.Extensible, visit VisitFunc) error {
	e, ok := s.entities[t]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, t)
	}
	if err := visit(path, t, v); err != nil {
		return err
	}
	for _, f := range e.Fields {
		if f.custom {
			continue
		}
		switch f.kind {
		case KindObject:
			if c, ok := f.Child(v); ok {
				if err := s.walk(Join(path, f.name), f.entity, c.(openrtb2.Extensible), visit); err != nil {
					return err
				}
			}
		case KindObjectArray:
			children, _ := f.Children(v)
			for i, c := range children {
				if err := s.walk(Index(Join(path, f.name), i), f.entity, c.(openrtb2.Extensible), visit); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Join appends a wire name to a field path.
func Join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// Index appends an array index to a field path.
func Index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
