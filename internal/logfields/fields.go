/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldTxHash      = "txHash"
	FieldProjectDID  = "projectDid"
	FieldCapability  = "capability"
	FieldMethod      = "method"
	FieldMsgType     = "msgType"
	FieldTemplate    = "template"
	FieldCacheKey    = "cacheKey"
	FieldSigner      = "signer"
	FieldStage       = "stage"
	FieldErrorCode   = "errorCode"
	FieldBlockHash   = "blockHash"
	FieldBlockHeight = "blockHeight"
	FieldCollection  = "collection"
	FieldQueue       = "queue"
)

// WithTxHash sets the transaction hash field.
func WithTxHash(txHash string) zap.Field {
	return zap.String(FieldTxHash, txHash)
}

// WithProjectDID sets the project DID field.
func WithProjectDID(projectDID string) zap.Field {
	return zap.String(FieldProjectDID, projectDID)
}

// WithCapability sets the capability field.
func WithCapability(capability string) zap.Field {
	return zap.String(FieldCapability, capability)
}

// WithMethod sets the RPC method field.
func WithMethod(method string) zap.Field {
	return zap.String(FieldMethod, method)
}

// WithMsgType sets the queue message type field.
func WithMsgType(msgType string) zap.Field {
	return zap.String(FieldMsgType, msgType)
}

// WithTemplate sets the template field.
func WithTemplate(template string) zap.Field {
	return zap.String(FieldTemplate, template)
}

// WithCacheKey sets the cache key field.
func WithCacheKey(key string) zap.Field {
	return zap.String(FieldCacheKey, key)
}

// WithSigner sets the signer DID field.
func WithSigner(did string) zap.Field {
	return zap.String(FieldSigner, did)
}

// WithStage sets the admission stage field.
func WithStage(stage string) zap.Field {
	return zap.String(FieldStage, stage)
}

// WithErrorCode sets the blockchain error code field.
func WithErrorCode(code int64) zap.Field {
	return zap.Int64(FieldErrorCode, code)
}

// WithBlockHash sets the block hash field.
func WithBlockHash(hash string) zap.Field {
	return zap.String(FieldBlockHash, hash)
}

// WithBlockHeight sets the block height field.
func WithBlockHeight(height int64) zap.Field {
	return zap.Int64(FieldBlockHeight, height)
}

// WithCollection sets the collection field.
func WithCollection(name string) zap.Field {
	return zap.String(FieldCollection, name)
}

// WithQueue sets the queue name field.
func WithQueue(name string) zap.Field {
	return zap.String(FieldQueue, name)
}
