/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package settlement

import (
	"errors"

	"github.com/tidwall/gjson"
)

// Message is an inbound blockchain response.
type Message struct {
	MsgType string
	TxHash  string
	// Data is the raw JSON of the data field.
	Data gjson.Result
	Raw  []byte
}

// ParseMessage parses a raw response message.
func ParseMessage(raw []byte) (*Message, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("message is not valid JSON")
	}

	parsed := gjson.ParseBytes(raw)

	if !parsed.IsObject() {
		return nil, errors.New("message is not a JSON object")
	}

	msgType := parsed.Get("msgType").String()
	if msgType == "" {
		return nil, errors.New("msgType is required")
	}

	return &Message{
		MsgType: msgType,
		TxHash:  parsed.Get("txHash").String(),
		Data:    parsed.Get("data"),
		Raw:     raw,
	}, nil
}

// ErrorCode returns the blockchain error code: data.code when present, otherwise data.check_tx.code,
// otherwise zero.
func (m *Message) ErrorCode() int64 {
	if code := m.Data.Get("code"); code.Exists() {
		return code.Int()
	}

	return m.Data.Get("check_tx.code").Int()
}

// BlockHash returns the confirming block hash.
func (m *Message) BlockHash() string {
	return m.Data.Get("hash").String()
}

// BlockHeight returns the confirming block height.
func (m *Message) BlockHeight() int64 {
	return m.Data.Get("height").Int()
}
