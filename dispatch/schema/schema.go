package schema

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/xeipuuv/gojsonschema"
)

type SchemaType int

const (
	SchemaTypeMeanRequest SchemaType = iota
	SchemaTypeResponse
)

func (t SchemaType) String() string {
	switch t {
	case SchemaTypeMeanRequest:
		return "mean_request"
	case SchemaTypeResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Error types reported by gojsonschema that callers branch on.
const (
	ErrorTypeInvalidType   = "invalid_type"
	ErrorTypeArrayMinItems = "array_min_items"
)

var ErrSchemaNotFound = errors.New("schema not found")

type Schema struct {
	schemas map[SchemaType]*gojsonschema.Schema
}

func (s *Schema) Get(schemaType SchemaType) (*gojsonschema.Schema, error) {
	schema, ok := s.schemas[schemaType]
	if !ok {
		return nil, ErrSchemaNotFound
	}

	return schema, nil
}

// Validate validates the raw JSON document against the given schema. An
// error is returned if the schema is unknown or data is not valid JSON.
func (s *Schema) Validate(schemaType SchemaType, data []byte) (*gojsonschema.Result, error) {
	schema, err := s.Get(schemaType)
	if err != nil {
		return nil, err
	}

	return schema.Validate(gojsonschema.NewBytesLoader(data))
}

// HasErrorType reports whether the result carries an error of the given type.
func HasErrorType(result *gojsonschema.Result, errorType string) bool {
	for _, err := range result.Errors() {
		if err.Type() == errorType {
			return true
		}
	}

	return false
}

//go:embed request-mean.json
var meanRequest json.RawMessage

//go:embed response.json
var response json.RawMessage

func New() (*Schema, error) {
	meanRequestSchema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(meanRequest))
	if err != nil {
		return nil, err
	}

	responseSchema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(response))
	if err != nil {
		return nil, err
	}

	return &Schema{
		schemas: map[SchemaType]*gojsonschema.Schema{
			SchemaTypeMeanRequest: meanRequestSchema,
			SchemaTypeResponse:    responseSchema,
		},
	}, nil
}
