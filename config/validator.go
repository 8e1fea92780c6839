package config

import (
	"github.com/grovetools/promptline/schema"
)

// SchemaValidator validates settings against the generated JSON Schema.
type SchemaValidator struct {
	validator *schema.Validator
}

// NewSchemaValidator creates a new schema validator from GenerateSchema.
func NewSchemaValidator() (*SchemaValidator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, err
	}
	validator, err := schema.NewValidator(data)
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{validator: validator}, nil
}

// Validate validates settings data against the schema.
func (v *SchemaValidator) Validate(data interface{}) error {
	return v.validator.Validate(data)
}
