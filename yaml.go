package jschema

import (
	"github.com/goccy/go-yaml"
)

// ReadSchemaYAML parses a schema written as YAML. The document is converted
// to JSON text and fed through ReadSchema, so the same error kinds apply;
// YAML syntax errors surface as MalformedJson.
func ReadSchemaYAML(data []byte) (*Schema, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, newSchemaError(MalformedJson, err.Error())
	}
	return ReadSchema(jsonData)
}
