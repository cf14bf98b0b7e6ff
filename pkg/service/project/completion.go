/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/pkg/service/settlement"
)

// Project and claim statuses set on settlement.
const (
	ProjectStatusCreated = "CREATED"
	ProjectStatusFunded  = "FUNDED"
	ClaimStatusPending   = "PENDING"
)

const (
	fieldConfirmed     = "confirmed"
	fieldCurrentStatus = "currentStatus"
	fieldFundingTxHash = "fundingTxHash"
	fieldEvaluation    = "evaluationTxHash"
)

// Routes returns every settlement route an outbound message can carry.
func Routes() []string {
	return []string{
		RouteCreateProject,
		RouteUpdateProjectStatus,
		RouteCreateAgent,
		RouteUpdateAgent,
		RouteCreateClaim,
		RouteCreateEvaluation,
	}
}

// Handlers returns the completion handler of every route.
func (s *Service) Handlers() map[string]settlement.Handler {
	return map[string]settlement.Handler{
		RouteCreateProject:       s.setStatus(s.stores.Projects, ProjectStatusCreated),
		RouteUpdateProjectStatus: s.applyProjectStatus,
		RouteCreateAgent:         s.confirmAgent,
		RouteUpdateAgent:         s.applyAgentStatus,
		RouteCreateClaim:         s.setStatus(s.stores.Claims, ClaimStatusPending),
		RouteCreateEvaluation:    s.applyEvaluation,
	}
}

// EthHandler records a funding transaction reported by the bridge.
func (s *Service) EthHandler() settlement.Handler {
	return func(ctx context.Context, msg *settlement.Message) error {
		projectDID := msg.Data.Get(fieldProjectDID).String()
		if projectDID == "" {
			return errors.New("eth message has no projectDid")
		}

		err := s.stores.Projects.UpdateOne(ctx,
			map[string]interface{}{fieldProjectDID: projectDID},
			map[string]interface{}{fieldStatus: ProjectStatusFunded, fieldFundingTxHash: msg.TxHash})
		if err != nil {
			return fmt.Errorf("fund project %s: %w", projectDID, err)
		}

		logger.Info("project funded", logfields.WithProjectDID(projectDID), logfields.WithTxHash(msg.TxHash))

		return nil
	}
}

func (s *Service) setStatus(store Store, status string) settlement.Handler {
	return func(ctx context.Context, msg *settlement.Message) error {
		return store.UpdateOne(ctx, byTxHash(msg), map[string]interface{}{fieldStatus: status})
	}
}

func (s *Service) confirmAgent(ctx context.Context, msg *settlement.Message) error {
	return s.stores.Agents.UpdateOne(ctx, byTxHash(msg), map[string]interface{}{fieldConfirmed: true})
}

func (s *Service) applyProjectStatus(ctx context.Context, msg *settlement.Message) error {
	st, err := s.stores.ProjectStatuses.FindOne(ctx, byTxHash(msg))
	if err != nil {
		return fmt.Errorf("find project status: %w", err)
	}

	return s.stores.Projects.UpdateOne(ctx,
		map[string]interface{}{fieldProjectDID: st[fieldProjectDID]},
		map[string]interface{}{fieldStatus: st[fieldStatus]})
}

func (s *Service) applyAgentStatus(ctx context.Context, msg *settlement.Message) error {
	st, err := s.stores.AgentStatuses.FindOne(ctx, byTxHash(msg))
	if err != nil {
		return fmt.Errorf("find agent status: %w", err)
	}

	return s.stores.Agents.UpdateOne(ctx,
		map[string]interface{}{fieldProjectDID: st[fieldProjectDID], fieldAgentDID: st[fieldAgentDID]},
		map[string]interface{}{fieldCurrentStatus: map[string]interface{}{
			fieldStatus:  st[fieldStatus],
			fieldRole:    st[fieldRole],
			fieldVersion: st[fieldVersion],
			fieldTxHash:  msg.TxHash,
		}})
}

// applyEvaluation moves the evaluated claim to the evaluation status. claimId is the claim's transaction hash.
func (s *Service) applyEvaluation(ctx context.Context, msg *settlement.Message) error {
	ev, err := s.stores.Evaluations.FindOne(ctx, byTxHash(msg))
	if err != nil {
		return fmt.Errorf("find evaluation: %w", err)
	}

	return s.stores.Claims.UpdateOne(ctx,
		map[string]interface{}{fieldProjectDID: ev[fieldProjectDID], fieldTxHash: ev[fieldClaimID]},
		map[string]interface{}{fieldStatus: ev[fieldStatus], fieldEvaluation: msg.TxHash})
}

func byTxHash(msg *settlement.Message) map[string]interface{} {
	return map[string]interface{}{fieldTxHash: msg.TxHash}
}
