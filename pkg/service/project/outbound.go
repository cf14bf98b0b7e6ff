/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"context"
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/ixoworld/elysian/pkg/queue"
	"github.com/ixoworld/elysian/pkg/request"
)

// buildOutbound assembles the blockchain transaction for a committed object and signs it with the project
// wallet:
//
//	{"type": route, "value": {"data": obj, "txHash", "senderDid", "projectDid", "pubKey"}}
func (s *Service) buildOutbound(ctx context.Context, route string, obj map[string]interface{},
	req *request.Request) (*queue.OutboundMessage, error) {
	w, err := s.wallets.Get(ctx, req.ProjectDID)
	if err != nil {
		return nil, err
	}

	txHash, _ := obj[fieldTxHash].(string) //nolint:errcheck

	tx := []byte(`{}`)

	for _, field := range []struct {
		path  string
		value interface{}
	}{
		{"type", route},
		{"value.data", obj},
		{"value.txHash", txHash},
		{"value.senderDid", req.Signer()},
		{"value.projectDid", req.ProjectDID},
		{"value.pubKey", w.VerifyKey},
	} {
		if tx, err = sjson.SetBytes(tx, field.path, field.value); err != nil {
			return nil, fmt.Errorf("set %s: %w", field.path, err)
		}
	}

	return s.wallets.SignForBlockchain(ctx, w, route, tx)
}
