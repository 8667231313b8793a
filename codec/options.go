package codec

import (
	"github.com/prebid/openrtb-codec/metrics"
	"github.com/prebid/openrtb-codec/schema"
)

type options struct {
	schema              *schema.Schema
	applyDefaults       bool
	recommendedWarnings bool
	semanticChecks      bool
	metricsEngine       metrics.MetricsEngine
}

func newOptions(opts []Option) options {
	o := options{
		schema:         schema.Default(),
		applyDefaults:  true,
		semanticChecks: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures an Encoder or a Decoder.
type Option func(*options)

// WithSchema replaces the OpenRTB tables, typically with a schema returned by
// schema.Extend.
func WithSchema(s *schema.Schema) Option {
	return func(o *options) {
		if s != nil {
			o.schema = s
		}
	}
}

// WithoutDefaults stops the decoder from filling absent attributes with their
// OpenRTB defaults, so that a decoded graph holds exactly what was on the wire.
func WithoutDefaults() Option {
	return func(o *options) {
		o.applyDefaults = false
	}
}

// WithRecommendedWarnings makes the decoder report absent recommended attributes.
func WithRecommendedWarnings() Option {
	return func(o *options) {
		o.recommendedWarnings = true
	}
}

// WithoutSemanticChecks skips the cross-field rules of package ortb.
func WithoutSemanticChecks() Option {
	return func(o *options) {
		o.semanticChecks = false
	}
}

// WithMetrics records every call into m.
func WithMetrics(m metrics.MetricsEngine) Option {
	return func(o *options) {
		o.metricsEngine = m
	}
}
