// Package jschema implements the runtime core of a JSON Schema Draft 4
// toolkit: an in-memory schema model with loss-preserving round-trip to and
// from JSON text, a same-document reference collapse engine, and a validator
// that checks JSON instances against a schema and reports numbered,
// position-tagged diagnostics.
//
// Reading and writing go through ReadSchema and WriteSchema. Validation is
// performed by a Validator, which accumulates Diagnostic values in emission
// order; an empty result means the instance is valid:
//
//	schema, err := jschema.ReadSchema(schemaText)
//	if err != nil {
//		log.Fatal(err)
//	}
//	validator := jschema.NewValidator(schema)
//	diags, err := validator.Validate(instanceText)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, d := range diags {
//		fmt.Println(d.String())
//	}
//
// Schemas are immutable after construction as far as the validator is
// concerned and may be shared between validators; a Validator itself is not
// safe for concurrent use.
package jschema
