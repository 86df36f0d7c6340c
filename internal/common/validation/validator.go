// internal/common/validation/validator.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Result holds the outcome of validating a document against a schema.
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors,omitempty"`
}

type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorSummary renders errors as a single string suitable for logging and
// for re-prompting the model.
func (r *Result) ErrorSummary() string {
	if r.Valid {
		return ""
	}
	summary := ""
	for i, e := range r.Errors {
		if i > 0 {
			summary += "; "
		}
		summary += fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return summary
}

// Validator caches compiled JSON schemas by name.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

func NewValidator() *Validator {
	return &Validator{schemas: make(map[string]*gojsonschema.Schema)}
}

// Register compiles and stores a schema under the given name.
func (v *Validator) Register(name, schemaJSON string) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}
	v.schemas[name] = schema
	return nil
}

// Has reports whether a schema is registered under the given name.
func (v *Validator) Has(name string) bool {
	_, ok := v.schemas[name]
	return ok
}

// Validate checks a JSON document against a registered schema.
func (v *Validator) Validate(name string, document []byte) (*Result, error) {
	schema, ok := v.schemas[name]
	if !ok {
		return nil, fmt.Errorf("schema %q not registered", name)
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validate against %q: %w", name, err)
	}

	result := &Result{Valid: res.Valid()}
	for _, e := range res.Errors() {
		result.Errors = append(result.Errors, Error{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return result, nil
}
