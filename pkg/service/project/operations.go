/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/pkg/queue"
	"github.com/ixoworld/elysian/pkg/request"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
	"github.com/ixoworld/elysian/pkg/service/transaction"
	"github.com/ixoworld/elysian/pkg/txlog"
)

const (
	templateProject = "project"
	templateAgent   = "agent"
	templateClaim   = "claim"
)

const (
	fieldProjectDID = "projectDid"
	fieldTxHash     = "txHash"
	fieldVersion    = "version"
	fieldAgentDID   = "agentDid"
	fieldRole       = "role"
	fieldStatus     = "status"
	fieldClaimID    = "claimId"
	fieldCreator    = "_creator"
)

// Agent roles.
const (
	RoleServiceAgent = "SA"
	RoleEvaluator    = "EA"
	RoleInvestor     = "IA"
)

// Agent statuses.
const (
	AgentStatusPending  = "0"
	AgentStatusApproved = "1"
	AgentStatusRevoked  = "2"
)

// roleCapabilities maps an agent role to the capability an approved agent of that role holds.
var roleCapabilities = map[string]string{ //nolint:gochecknoglobals
	RoleServiceAgent: SubmitClaim,
	RoleEvaluator:    EvaluateClaim,
}

type capabilityUpdate func(ctx context.Context, req *request.Request) error

// operation is the capability set of one committing method.
type operation struct {
	svc    *Service
	route  string
	update capabilityUpdate
}

func (o *operation) UpdateCapabilities(ctx context.Context, req *request.Request, _ string) error {
	if o.update == nil {
		return nil
	}

	return o.update(ctx, req)
}

func (o *operation) BuildOutboundMessage(ctx context.Context, obj map[string]interface{}, req *request.Request,
	_ string) (*queue.OutboundMessage, error) {
	return o.svc.buildOutbound(ctx, o.route, obj, req)
}

func (s *Service) commit(name, route string, model Store, duplicate transaction.DuplicateCheck,
	update capabilityUpdate) method {
	set := &operation{svc: s, route: route, update: update}

	return func(ctx context.Context, rawArgs []byte) (interface{}, error) {
		return s.processor.Process(ctx, rawArgs, name, "", set, model, duplicate)
	}
}

// createProject provisions the project wallet and its capability set before the request goes through
// admission, since admission resolves capabilities against the new project DID.
func (s *Service) createProject(ctx context.Context, rawArgs []byte) (interface{}, error) {
	if !gjson.ValidBytes(rawArgs) {
		return nil, resterr.NewValidationError(resterr.AdmissionComponent, "request is not valid JSON")
	}

	args := gjson.ParseBytes(rawArgs)

	if args.Get(fieldProjectDID).String() != "" || args.Get("payload.data."+fieldProjectDID).String() != "" {
		return nil, resterr.NewValidationError(resterr.AdmissionComponent,
			"projectDid must not be set when creating a project")
	}

	owner := args.Get("signature.creator").String()
	if owner == "" {
		return nil, resterr.NewValidationError(resterr.AdmissionComponent, "signature creator is required")
	}

	if err := s.checkResent(ctx, args); err != nil {
		return nil, err
	}

	w, err := s.wallets.Generate(ctx)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.WalletComponent, err)
	}

	if err = s.capabilities.CreateCapabilities(ctx, w.DID, DefaultCapabilities(owner)); err != nil {
		return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.CapabilityComponent, err)
	}

	logger.Info("project provisioned", logfields.WithProjectDID(w.DID), logfields.WithSigner(owner))

	set := &operation{svc: s, route: RouteCreateProject}

	return s.processor.Process(ctx, rawArgs, CreateProject, w.DID, set, s.stores.Projects, nil)
}

// checkResent fails with a conflict when the exact signed request is already in the transaction log.
func (s *Service) checkResent(ctx context.Context, args gjson.Result) error {
	if s.transactions == nil {
		return nil
	}

	payload := args.Get("payload")
	if !payload.IsObject() {
		return resterr.NewValidationError(resterr.AdmissionComponent, "payload is required")
	}

	body := &bytes.Buffer{}
	if err := json.Compact(body, []byte(payload.Raw)); err != nil {
		return resterr.NewValidationError(resterr.AdmissionComponent, "payload is not valid JSON")
	}

	var sig request.Signature

	if err := json.Unmarshal([]byte(args.Get("signature").Raw), &sig); err != nil {
		return resterr.NewValidationError(resterr.AdmissionComponent, "signature is not valid")
	}

	hash, err := txlog.Hash(body.String(), sig)
	if err != nil {
		return resterr.NewValidationError(resterr.AdmissionComponent, err.Error())
	}

	_, err = s.transactions.Get(ctx, hash)

	switch {
	case err == nil:
		return resterr.NewCustomError(resterr.Conflict, resterr.TransactionLogComponent, txlog.ErrDuplicate)
	case errors.Is(err, txlog.ErrDataNotFound):
		return nil
	default:
		return resterr.NewCustomError(resterr.StoreUnavailable, resterr.TransactionLogComponent, err)
	}
}

// query returns a read method listing the project's documents in store. Each key present in the request
// data as a non-empty string narrows the result.
func (s *Service) query(name string, store Store, keys ...string) method {
	return func(ctx context.Context, rawArgs []byte) (interface{}, error) {
		return s.processor.Query(ctx, rawArgs, name, "",
			func(ctx context.Context, req *request.Request) (interface{}, error) {
				filter := map[string]interface{}{fieldProjectDID: req.ProjectDID}

				for _, k := range keys {
					if v := stringField(req.Data, k); v != "" {
						filter[k] = v
					}
				}

				docs, err := store.Find(ctx, filter)
				if err != nil {
					return nil, resterr.NewCustomError(resterr.StoreUnavailable, resterr.DomainStoreComponent,
						fmt.Errorf("%s: %w", name, err))
				}

				return docs, nil
			})
	}
}

// versionCheck reports a conflict when a stored document for the same project and keys has a version newer
// than or equal to the requested one.
func (s *Service) versionCheck(store Store, keys []string) transaction.DuplicateCheck {
	return func(ctx context.Context, req *request.Request) (bool, error) {
		filter := map[string]interface{}{
			fieldProjectDID: req.ProjectDID,
			fieldVersion:    map[string]interface{}{"$gte": req.Version},
		}

		for _, k := range keys {
			filter[k] = stringField(req.Data, k)
		}

		return store.Exists(ctx, filter)
	}
}

func (s *Service) agentExists(ctx context.Context, req *request.Request) (bool, error) {
	return s.stores.Agents.Exists(ctx, map[string]interface{}{
		fieldProjectDID: req.ProjectDID,
		fieldAgentDID:   stringField(req.Data, fieldAgentDID),
	})
}

func (s *Service) evaluationExists(ctx context.Context, req *request.Request) (bool, error) {
	return s.stores.Evaluations.Exists(ctx, map[string]interface{}{
		fieldProjectDID: req.ProjectDID,
		fieldClaimID:    stringField(req.Data, fieldClaimID),
	})
}

// updateAgentCapabilities grants the role capability to an approved agent and takes it back from a revoked one.
func (s *Service) updateAgentCapabilities(ctx context.Context, req *request.Request) error {
	agentDID := stringField(req.Data, fieldAgentDID)

	capabilityName, ok := roleCapabilities[stringField(req.Data, fieldRole)]
	if !ok || agentDID == "" {
		return nil
	}

	switch stringField(req.Data, fieldStatus) {
	case AgentStatusApproved:
		return s.capabilities.AddCapability(ctx, req.ProjectDID, agentDID, capabilityName)
	case AgentStatusRevoked:
		return s.capabilities.RemoveCapability(ctx, req.ProjectDID, agentDID, capabilityName)
	default:
		return nil
	}
}

// stringField returns data[key] as a string. Numbers are formatted without exponent.
func stringField(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
