/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
)

var logger = log.New("jsonschema")

// Document holds the JSON schema document.
type Document map[string]interface{}

// Validator is a JSON schema validator.
type Validator interface {
	ValidateJSONSchema(data interface{}) error
}

// ViolationError is returned when a document does not conform to its schema. Only the first
// violation reported by the schema engine is kept.
type ViolationError struct {
	Field       string
	Description string
	violation   string
}

func (e *ViolationError) Error() string {
	return e.violation
}

type validatorFactory func(schema Document) (Validator, error)

type cachedValidator struct {
	raw       []byte
	validator Validator
}

// CachingValidator implements a caching JSON schema validator where a given template schema is compiled
// once and reused until the template contents change.
type CachingValidator struct {
	cache           map[string]*cachedValidator
	createValidator validatorFactory
	mutex           sync.RWMutex
}

// NewCachingValidator returns a new caching JSON schema validator.
func NewCachingValidator() *CachingValidator {
	return &CachingValidator{
		cache:           make(map[string]*cachedValidator),
		createValidator: newValidator,
	}
}

// Validate validates the given JSON document against the schema registered under templateKey.
func (c *CachingValidator) Validate(data interface{}, templateKey string, schema []byte) error {
	validator, err := c.get(templateKey, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	return validator.ValidateJSONSchema(data)
}

func (c *CachingValidator) get(templateKey string, schema []byte) (Validator, error) {
	c.mutex.RLock()
	v, ok := c.cache[templateKey]
	c.mutex.RUnlock()

	if ok && bytes.Equal(v.raw, schema) {
		return v.validator, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	var schemaDoc Document

	err := json.Unmarshal(schema, &schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	if id, ok := schemaDoc["$id"]; ok {
		if _, isString := id.(string); !isString {
			return nil, fmt.Errorf("expecting the value of field '$id' in JSON schema to be a string type but was %T", id)
		}
	}

	schemaValidator, err := c.createValidator(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", templateKey, err)
	}

	c.cache[templateKey] = &cachedValidator{raw: schema, validator: schemaValidator}

	logger.Debug("Created validator for JSON schema", logfields.WithTemplate(templateKey))

	return schemaValidator, nil
}

func newValidator(schema Document) (Validator, error) {
	schemaValidator, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return &validator{schema: schemaValidator}, nil
}

type validator struct {
	schema *gojsonschema.Schema
}

func (v *validator) ValidateJSONSchema(data interface{}) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := result.Errors()
	if len(violations) == 0 {
		return errors.New("document does not match schema")
	}

	first := violations[0]

	return &ViolationError{
		Field:       first.Field(),
		Description: first.Description(),
		violation:   first.String(),
	}
}
