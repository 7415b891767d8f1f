package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const envelopeSchemaURL = "https://ocfconv.local/schemas/envelope.schema.json"

// envelopeSchema checks only the shape shared by every portable object. Field
// presence and formats are left to the per-entity converters so that they can
// report the entity-qualified field path.
const envelopeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["object_type"],
  "properties": {
    "object_type": {"type": "string"},
    "id": {"type": "string"},
    "date": {"type": "string"},
    "comments": {"type": "array", "items": {"type": "string"}}
  }
}`

var envelope = mustCompileEnvelope()

func mustCompileEnvelope() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(envelopeSchemaURL, strings.NewReader(envelopeSchema)); err != nil {
		panic(fmt.Sprintf("envelope schema load failed: %v", err))
	}
	compiled, err := c.Compile(envelopeSchemaURL)
	if err != nil {
		panic(fmt.Sprintf("envelope schema compile failed: %v", err))
	}
	return compiled
}

// CheckEnvelope validates a generically decoded JSON document (the result of
// json.Unmarshal into an `any`) against the portable object envelope.
func CheckEnvelope(doc any) error {
	err := envelope.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return NewValidationError("", CodeSchemaMismatch, nil, err.Error())
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	field := strings.ReplaceAll(strings.TrimPrefix(leaf.InstanceLocation, "/"), "/", ".")
	switch {
	case strings.HasSuffix(leaf.KeywordLocation, "/required"):
		return NewValidationError("object_type", CodeRequiredFieldMissing, nil, "object_type is required")
	case strings.HasSuffix(leaf.KeywordLocation, "/type"):
		return NewValidationError(field, CodeInvalidType, nil, leaf.Message)
	default:
		return NewValidationError(field, CodeSchemaMismatch, nil, leaf.Message)
	}
}
