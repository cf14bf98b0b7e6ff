/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package queue

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the queue cannot be reached.
var ErrUnavailable = errors.New("queue unavailable")

// OutboundMessage is published for the blockchain bridge.
type OutboundMessage struct {
	MsgType    string `json:"msgType"`
	ProjectDID string `json:"projectDid"`
	// Data is the hex encoded blockchain submission.
	Data string `json:"data"`
}

// Publisher publishes outbound messages.
type Publisher interface {
	Publish(ctx context.Context, msg *OutboundMessage) error
	Ping(ctx context.Context) error
}

// Subscriber polls inbound response messages. Poll returns (nil, nil) when no message is waiting.
type Subscriber interface {
	Poll(ctx context.Context) ([]byte, error)
}
