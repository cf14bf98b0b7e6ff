/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package capability_test -source=capability.go -mock_names store=MockStore

package capability

import (
	"context"
	"errors"
	"fmt"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
)

var logger = log.New("capability")

// ErrDataNotFound is returned by the store when a project has no capabilities.
var ErrDataNotFound = errors.New("data not found")

// Capability is a single operation a project permits, together with its validation policy.
type Capability struct {
	Capability  string   `json:"capability" bson:"capability"`
	Template    string   `json:"template" bson:"template"`
	Allow       []string `json:"allow" bson:"allow"`
	ValidateKYC bool     `json:"validateKYC" bson:"validateKYC"`
}

// Capabilities is the capability set registered for a project.
type Capabilities struct {
	ProjectDID   string        `json:"projectDid" bson:"projectDid"`
	Capabilities []*Capability `json:"capabilities" bson:"capabilities"`
}

// Find returns the capability with the given name, or nil.
func (c *Capabilities) Find(method string) *Capability {
	for _, capability := range c.Capabilities {
		if capability.Capability == method {
			return capability
		}
	}

	return nil
}

type store interface {
	Find(ctx context.Context, projectDID string) (*Capabilities, error)
	Create(ctx context.Context, capabilities *Capabilities) error
	AddSigner(ctx context.Context, projectDID, did, capability string) error
	RemoveSigner(ctx context.Context, projectDID, did, capability string) error
}

// Service resolves capabilities for admission and maintains capability bookkeeping for commits.
type Service struct {
	store store
}

// NewService returns a new capability service.
func NewService(store store) *Service {
	return &Service{store: store}
}

// Resolve returns the capability map for the given project and method. The store is read on every call
// so that capability changes take effect immediately.
func (s *Service) Resolve(ctx context.Context, projectDID, method string) (*Capability, error) {
	caps, err := s.store.Find(ctx, projectDID)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.CapabilityNotFound, resterr.CapabilityComponent,
				fmt.Errorf("capabilities not found for project %s", projectDID))
		}

		return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.CapabilityComponent,
			fmt.Errorf("find capabilities: %w", err))
	}

	c := caps.Find(method)
	if c == nil {
		return nil, resterr.NewCustomError(resterr.CapabilityNotFound, resterr.CapabilityComponent,
			fmt.Errorf("capability %s not found for project %s", method, projectDID))
	}

	return c, nil
}

// CreateCapabilities registers the initial capability set of a new project.
func (s *Service) CreateCapabilities(ctx context.Context, projectDID string, caps []*Capability) error {
	err := s.store.Create(ctx, &Capabilities{
		ProjectDID:   projectDID,
		Capabilities: caps,
	})
	if err != nil {
		return fmt.Errorf("create capabilities: %w", err)
	}

	logger.Debug("capabilities created", logfields.WithProjectDID(projectDID))

	return nil
}

// AddCapability allows did to invoke capability on the project.
func (s *Service) AddCapability(ctx context.Context, projectDID, did, capability string) error {
	if err := s.store.AddSigner(ctx, projectDID, did, capability); err != nil {
		return fmt.Errorf("add capability: %w", err)
	}

	logger.Debug("capability added", logfields.WithProjectDID(projectDID), logfields.WithSigner(did),
		logfields.WithCapability(capability))

	return nil
}

// RemoveCapability revokes did from capability on the project.
func (s *Service) RemoveCapability(ctx context.Context, projectDID, did, capability string) error {
	if err := s.store.RemoveSigner(ctx, projectDID, did, capability); err != nil {
		return fmt.Errorf("remove capability: %w", err)
	}

	logger.Debug("capability removed", logfields.WithProjectDID(projectDID), logfields.WithSigner(did),
		logfields.WithCapability(capability))

	return nil
}
