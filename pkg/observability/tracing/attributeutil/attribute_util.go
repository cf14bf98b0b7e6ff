/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redacted = "[REDACTED]"

// JSON returns attribute with the value marshaled to JSON. Value can be redacted using WithRedacted option.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	return RawJSON(key, b, opts...)
}

// RawJSON returns attribute with the given JSON document as value. Value can be redacted using WithRedacted
// option. Invalid JSON yields an empty attribute value.
func RawJSON(key string, raw []byte, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	if !gjson.ValidBytes(raw) {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	b := raw

	for _, path := range op.redacted {
		if gjson.GetBytes(b, path).Exists() {
			b, _ = sjson.SetBytes(b, path, redacted)
		}
	}

	return attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(string(b)),
	}
}

type options struct {
	redacted []string
}

type Opt func(*options)

// WithRedacted returns option that replaces value with [REDACTED] for the given key. Key is a gjson path
// to the value to be redacted. Refer to https://github.com/tidwall/gjson/blob/master/SYNTAX.md for path syntax.
func WithRedacted(key string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, key)
	}
}
