package openrtb_ext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/schema"
)

func TestNewExtValidator(t *testing.T) {
	validator, err := NewExtValidator("testdata/schemas")
	require.NoError(t, err)

	assert.Equal(t, []schema.EntityType{schema.Imp, schema.Regs}, validator.Entities())
	assert.Contains(t, validator.Schema(schema.Imp), `"placementId"`)
	assert.Empty(t, validator.Schema(schema.Device))
}

func TestNewExtValidatorErrors(t *testing.T) {
	testCases := []struct {
		description string
		dir         string
	}{
		{description: "missing directory", dir: "testdata/does-not-exist"},
		{description: "file not named after an entity", dir: "testdata/bad-name"},
		{description: "invalid schema", dir: "testdata/bad-schema"},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			validator, err := NewExtValidator(test.dir)
			assert.Error(t, err)
			assert.Nil(t, validator)
		})
	}
}

func TestExtValidatorValidate(t *testing.T) {
	validator, err := NewExtValidator("testdata/schemas")
	require.NoError(t, err)

	testCases := []struct {
		description string
		entity      schema.EntityType
		ext         string
		wantErr     bool
	}{
		{description: "valid imp ext", entity: schema.Imp, ext: `{"placementId":12,"keywords":["a"]}`},
		{description: "missing required property", entity: schema.Imp, ext: `{"keywords":["a"]}`, wantErr: true},
		{description: "wrong property type", entity: schema.Imp, ext: `{"placementId":"12"}`, wantErr: true},
		{description: "not an object", entity: schema.Imp, ext: `[]`, wantErr: true},
		{description: "valid regs ext", entity: schema.Regs, ext: `{"gdpr":1,"us_privacy":"1YNN"}`},
		{description: "pattern mismatch", entity: schema.Regs, ext: `{"us_privacy":"yes"}`, wantErr: true},
		{description: "entity without schema", entity: schema.Device, ext: `"anything"`},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			err := validator.Validate(test.entity, json.RawMessage(test.ext))
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExtensions(t *testing.T) {
	validator, err := NewExtValidator("testdata/schemas")
	require.NoError(t, err)

	req := &openrtb2.BidRequest{
		ID: pointer.String("r"),
		Imp: []openrtb2.Imp{
			{ID: pointer.String("1"), Extension: openrtb2.Extension{Ext: json.RawMessage(`{"placementId":1}`)}},
			{ID: pointer.String("2"), Extension: openrtb2.Extension{Ext: json.RawMessage(`{"placementId":0}`)}},
			{ID: pointer.String("3")},
		},
		Regs: &openrtb2.Regs{Extension: openrtb2.Extension{Ext: json.RawMessage(`{"gdpr":2}`)}},
		Extension: openrtb2.Extension{
			Ext: json.RawMessage(`{"anything":true}`),
		},
	}

	findings, err := ValidateExtensions(schema.Default(), validator, schema.BidRequest, req)
	require.NoError(t, err)

	require.Len(t, findings, 2)
	assert.Equal(t, "imp[1].ext", findings[0].Path)
	assert.Equal(t, "regs.ext", findings[1].Path)
	for _, f := range findings {
		assert.Equal(t, errortypes.SemanticViolation, f.Kind)
		assert.Equal(t, errortypes.SeverityWarning, f.Sev)
	}
}
