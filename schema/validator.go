// Package schema checks decoded settings against a JSON schema.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "promptline.json"

// Violation is one failed schema keyword.
type Violation struct {
	// Location is a JSON pointer into the document ("/theme/name_fg"), "" for the root.
	Location string
	Message  string
}

func (v Violation) String() string {
	loc := v.Location
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + v.Message
}

// ValidationError lists every violation found in a document, ordered by location.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = "- " + v.String()
	}
	return "schema validation failed:\n" + strings.Join(lines, "\n")
}

// Validator holds a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator(schemaData []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(schemaData)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks data, which may be any JSON-marshalable value such as a
// map decoded from YAML or TOML. Schema failures are returned as *ValidationError.
func (v *Validator) Validate(data interface{}) error {
	doc, err := normalize(data)
	if err != nil {
		return err
	}

	err = v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	var violations []Violation
	collect(validationErr, &violations)
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Location < violations[j].Location
	})
	return &ValidationError{Violations: violations}
}

// normalize turns data into the plain JSON value types the validator expects
// (TOML decodes integers as int64, YAML may produce typed maps).
func normalize(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings for validation: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings for validation: %w", err)
	}
	return doc, nil
}

// collect keeps the leaves of the error tree; inner nodes only say that a
// nested keyword failed.
func collect(err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) == 0 {
		*out = append(*out, Violation{Location: err.InstanceLocation, Message: err.Message})
		return
	}
	for _, cause := range err.Causes {
		collect(cause, out)
	}
}
