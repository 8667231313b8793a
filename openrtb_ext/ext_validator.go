package openrtb_ext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/schema"
)

// The ExtValidator is used to enforce {entity}.ext values.
//
// The codec never looks inside "ext", so exchanges that want their extension
// payloads checked describe them with one JSON schema per entity type.
type ExtValidator interface {
	Validate(t schema.EntityType, ext json.RawMessage) error
	// Schema returns the JSON schema used to perform validation, or "" if the
	// entity type has none.
	Schema(t schema.EntityType) string
	Entities() []schema.EntityType
}

// NewExtValidator loads every <EntityType>.json file found in schemaDirectory.
// This will error if a file does not name an OpenRTB entity type, or is not a
// valid JSON schema.
func NewExtValidator(schemaDirectory string) (ExtValidator, error) {
	filesystem := http.Dir(schemaDirectory)
	entries, err := os.ReadDir(schemaDirectory)
	if err != nil {
		return nil, fmt.Errorf("Failed to read JSON schemas from directory %s. %v", schemaDirectory, err)
	}

	schemaContents := make(map[schema.EntityType]string, len(entries))
	schemas := make(map[schema.EntityType]*gojsonschema.Schema, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		t := schema.EntityType(strings.TrimSuffix(entry.Name(), ".json"))
		if _, ok := schema.Default().Entity(t); !ok {
			return nil, fmt.Errorf("File %s/%s does not match an OpenRTB entity type.", schemaDirectory, entry.Name())
		}

		schemaLoader := gojsonschema.NewReferenceLoaderFileSystem(fmt.Sprintf("file:///%s", entry.Name()), filesystem)
		loadedSchema, err := gojsonschema.NewSchema(schemaLoader)
		if err != nil {
			return nil, fmt.Errorf("Failed to load json schema at %s/%s: %v", schemaDirectory, entry.Name(), err)
		}

		fileBytes, err := os.ReadFile(fmt.Sprintf("%s/%s", schemaDirectory, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("Failed to read file %s/%s: %v", schemaDirectory, entry.Name(), err)
		}

		schemas[t] = loadedSchema
		schemaContents[t] = string(fileBytes)
	}

	return &extValidator{
		schemaContents: schemaContents,
		parsedSchemas:  schemas,
	}, nil
}

type extValidator struct {
	schemaContents map[schema.EntityType]string
	parsedSchemas  map[schema.EntityType]*gojsonschema.Schema
}

func (validator *extValidator) Validate(t schema.EntityType, ext json.RawMessage) error {
	parsed, ok := validator.parsedSchemas[t]
	if !ok {
		return nil
	}
	result, err := parsed.Validate(gojsonschema.NewBytesLoader(ext))
	if err != nil {
		return err
	}
	if !result.Valid() {
		errBuilder := bytes.NewBuffer(make([]byte, 0, 300))
		for i, err := range result.Errors() {
			if i > 0 {
				errBuilder.WriteString("; ")
			}
			errBuilder.WriteString(err.String())
		}
		return errors.New(errBuilder.String())
	}
	return nil
}

func (validator *extValidator) Schema(t schema.EntityType) string {
	return validator.schemaContents[t]
}

func (validator *extValidator) Entities() []schema.EntityType {
	types := make([]schema.EntityType, 0, len(validator.parsedSchemas))
	for t := range validator.parsedSchemas {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ValidateExtensions checks the "ext" of every object in the graph rooted at v.
// Payloads rejected by their schema are reported as SemanticViolation warnings on
// the "ext" path, since the payload itself is kept as it was.
func ValidateExtensions(s *schema.Schema, validator ExtValidator, t schema.EntityType, v openrtb2.Extensible) ([]*errortypes.Finding, error) {
	var findings []*errortypes.Finding
	err := s.Walk(t, v, func(path string, t schema.EntityType, obj openrtb2.Extensible) error {
		ext := obj.Lossless().Ext
		if len(ext) == 0 {
			return nil
		}
		if err := validator.Validate(t, ext); err != nil {
			findings = append(findings, errortypes.NewSemanticViolation(schema.Join(path, schema.ExtKey),
				fmt.Sprintf("%s.ext does not match its schema: %v", t, err)))
		}
		return nil
	})
	return findings, err
}
