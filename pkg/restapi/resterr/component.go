/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

//nolint:gosec
const (
	AdmissionComponent       Component = "admission"
	CapabilityComponent      Component = "capability-resolver"
	TemplateCacheComponent   Component = "template-cache"
	SchemaValidatorComponent Component = "schema-validator"
	PolicyComponent          Component = "capability-policy"
	SignatureComponent       Component = "signature-verifier"
	TransactionLogComponent  Component = "transaction-log"
	CommitComponent          Component = "commit"
	QueueComponent           Component = "message-queue"
	WalletComponent          Component = "wallet"
	DomainStoreComponent     Component = "domain-store"
	RPCComponent             Component = "rpc"
)
