/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// SignatureTypeED25519 is the only signature type accepted on requests.
const SignatureTypeED25519 = "ed25519-sha-256"

const wildcard = "*"

// Signature is the signature envelope attached to a request.
type Signature struct {
	Type           string `json:"type"`
	Created        string `json:"created"`
	Creator        string `json:"creator"`
	SignatureValue string `json:"signatureValue"`
}

// Request is a parsed client request. It is built once per call and never persisted.
type Request struct {
	ProjectDID string
	Template   string
	// Body is the compact JSON encoding of the signed payload.
	Body      string
	Data      map[string]interface{}
	Signature Signature
	Version   int64
	// HasVersion is false when the caller did not supply payload.data.version.
	HasVersion bool
	// Raw holds the full decoded arguments, used for schema validation.
	Raw map[string]interface{}
}

type envelope struct {
	Payload    json.RawMessage `json:"payload"`
	Signature  *Signature      `json:"signature"`
	ProjectDID string          `json:"projectDid"`
}

type payload struct {
	Template struct {
		Name string `json:"name"`
	} `json:"template"`
	Data map[string]interface{} `json:"data"`
}

// Parse decodes raw request arguments. defaultProjectDID is used when neither the envelope nor the
// payload data names a project.
func Parse(rawArgs []byte, defaultProjectDID string) (*Request, error) {
	var env envelope

	if err := json.Unmarshal(rawArgs, &env); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	if len(env.Payload) == 0 {
		return nil, errors.New("payload is required")
	}

	var p payload

	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	var raw map[string]interface{}

	if err := json.Unmarshal(rawArgs, &raw); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	body := &bytes.Buffer{}
	if err := json.Compact(body, env.Payload); err != nil {
		return nil, fmt.Errorf("compact payload: %w", err)
	}

	req := &Request{
		ProjectDID: env.ProjectDID,
		Template:   p.Template.Name,
		Body:       body.String(),
		Data:       p.Data,
		Raw:        raw,
	}

	if req.Data == nil {
		req.Data = map[string]interface{}{}
	}

	if env.Signature != nil {
		req.Signature = *env.Signature
	}

	if req.ProjectDID == "" {
		req.ProjectDID = gjson.GetBytes(env.Payload, "data.projectDid").String()
	}

	if req.ProjectDID == "" {
		req.ProjectDID = defaultProjectDID
	}

	if req.ProjectDID == "" {
		return nil, errors.New("projectDid is required")
	}

	if v := gjson.GetBytes(env.Payload, "data.version"); v.Exists() {
		req.Version = v.Int()
		req.HasVersion = true
	}

	return req, nil
}

// Signer returns the DID that claims to have signed the request.
func (r *Request) Signer() string {
	return r.Signature.Creator
}

// VerifyCapability checks the signer against the allow list. Each entry is an exact DID, "*", or a
// prefix ending in "*" such as "did:sov:*".
func (r *Request) VerifyCapability(allow []string) error {
	signer := r.Signer()
	if signer == "" {
		return errors.New("signature creator is required")
	}

	for _, pattern := range allow {
		if matches(pattern, signer) {
			return nil
		}
	}

	return fmt.Errorf("signer %s is not allowed to invoke this capability", signer)
}

func matches(pattern, signer string) bool {
	switch {
	case pattern == wildcard:
		return true
	case strings.HasSuffix(pattern, wildcard):
		return strings.HasPrefix(signer, strings.TrimSuffix(pattern, wildcard))
	default:
		return pattern == signer
	}
}
