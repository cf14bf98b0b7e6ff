/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination keyprotect_mocks_test.go -package keyprotect -source=keyprotect.go -mock_names awsClient=MockAWSClient

package keyprotect

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
)

type awsClient interface {
	Encrypt(ctx context.Context, params *kms.EncryptInput, optFns ...func(*kms.Options)) (*kms.EncryptOutput, error)
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// KMS protects wallet signing keys with an AWS KMS symmetric key.
type KMS struct {
	client         awsClient
	keyID          string
	encryptionAlgo types.EncryptionAlgorithmSpec
}

// Opts a Functional Options.
type Opts func(k *KMS)

// WithEncryptionAlgorithm sets the encryption\decryption algorithm.
func WithEncryptionAlgorithm(algo string) Opts {
	return func(k *KMS) { k.encryptionAlgo = types.EncryptionAlgorithmSpec(algo) }
}

// WithAWSClient sets custom AWS client.
func WithAWSClient(client awsClient) Opts {
	return func(k *KMS) { k.client = client }
}

// NewKMS returns a KMS key protector using keyID.
func NewKMS(awsConfig *aws.Config, keyID string, opts ...Opts) (*KMS, error) {
	if keyID == "" {
		return nil, errors.New("kms key id is required")
	}

	k := &KMS{
		keyID:          keyID,
		encryptionAlgo: types.EncryptionAlgorithmSpecSymmetricDefault,
	}

	for _, opt := range opts {
		opt(k)
	}

	if k.client == nil {
		k.client = kms.NewFromConfig(*awsConfig)
	}

	return k, nil
}

// Protect encrypts the key material.
func (k *KMS) Protect(ctx context.Context, plaintext []byte) ([]byte, error) {
	resp, err := k.client.Encrypt(ctx, &kms.EncryptInput{
		KeyId:               aws.String(k.keyID),
		Plaintext:           plaintext,
		EncryptionAlgorithm: k.encryptionAlgo,
	})
	if err != nil {
		return nil, fmt.Errorf("kms encrypt: %w", err)
	}

	return resp.CiphertextBlob, nil
}

// Unprotect decrypts key material previously returned by Protect.
func (k *KMS) Unprotect(ctx context.Context, ciphertext []byte) ([]byte, error) {
	resp, err := k.client.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob:      ciphertext,
		EncryptionAlgorithm: k.encryptionAlgo,
		KeyId:               aws.String(k.keyID),
	})
	if err != nil {
		return nil, fmt.Errorf("kms decrypt: %w", err)
	}

	return resp.Plaintext, nil
}

// Noop stores key material as is. Used when no KMS key is configured.
type Noop struct{}

// Protect returns plaintext unchanged.
func (Noop) Protect(_ context.Context, plaintext []byte) ([]byte, error) {
	return plaintext, nil
}

// Unprotect returns ciphertext unchanged.
func (Noop) Unprotect(_ context.Context, ciphertext []byte) ([]byte, error) {
	return ciphertext, nil
}
