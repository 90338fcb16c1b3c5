package content

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the expected shape of a content-source response. It is
// deliberately permissive: every property is optional and list fields accept
// either a scalar string or an array, matching the decoder. Violations are
// reported to the caller but never abort a build; the normalizer degrades
// malformed fields on its own.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "definitions": {
    "stringOrList": {
      "oneOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}},
        {"type": "null"}
      ]
    }
  },
  "properties": {
    "summary": {"type": "string"},
    "professionalSummary": {"type": "string"},
    "experiences": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "jobTitle": {"type": "string"},
          "company": {"type": "string"},
          "companyName": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "bullets": {"$ref": "#/definitions/stringOrList"},
          "responsibilities": {"$ref": "#/definitions/stringOrList"}
        }
      }
    },
    "skills": {"$ref": "#/definitions/stringOrList"},
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "school": {"type": "string"},
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "year": {"type": "string"},
          "graduationYear": {"type": "string"},
          "coursework": {"$ref": "#/definitions/stringOrList"},
          "relevantCoursework": {"$ref": "#/definitions/stringOrList"}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"$ref": "#/definitions/stringOrList"},
          "technologies": {"$ref": "#/definitions/stringOrList"},
          "skills": {"$ref": "#/definitions/stringOrList"}
        }
      }
    },
    "certifications": {"type": "array", "items": {"type": "object"}},
    "awards": {"type": "array", "items": {"type": "object"}},
    "languages": {"type": "array", "items": {"type": "object"}},
    "publications": {"type": "array", "items": {"type": "object"}}
  }
}`

// CheckShape validates a raw content-source response against the expected
// schema. A non-nil error describes the violations; callers log it and
// continue, since the decoder tolerates shape drift.
func CheckShape(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(responseSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("response shape violations: %s", strings.Join(violations, "; "))
}
