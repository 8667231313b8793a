// Package openrtb_ext handles the exchange-specific "ext" payloads that the codec
// carries through untouched: JSON-schema validation per entity type, merging and
// semantic comparison.
package openrtb_ext
