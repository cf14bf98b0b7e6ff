/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination project_mocks_test.go -self_package mocks -package project_test -source=project.go -mock_names Store=MockStore,capabilityManager=MockCapabilityManager,walletManager=MockWalletManager,processor=MockProcessor,transactionLookup=MockTransactionLookup

package project

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/capability"
	"github.com/ixoworld/elysian/pkg/queue"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
	"github.com/ixoworld/elysian/pkg/service/transaction"
	"github.com/ixoworld/elysian/pkg/txlog"
	"github.com/ixoworld/elysian/pkg/wallet"
)

var logger = log.New("project")

// ErrDataNotFound is returned by a Store when no document matches.
var ErrDataNotFound = errors.New("data not found")

// Collection names.
const (
	ProjectsCollection        = "projects"
	ProjectStatusesCollection = "projectstatuses"
	AgentsCollection          = "agents"
	AgentStatusesCollection   = "agentstatuses"
	ClaimsCollection          = "claims"
	EvaluationsCollection     = "evaluations"
)

// RPC methods. Each method is also the name of the capability that guards it.
const (
	CreateProject       = "createProject"
	UpdateProjectStatus = "updateProjectStatus"
	CreateAgent         = "createAgent"
	UpdateAgentStatus   = "updateAgentStatus"
	ListAgents          = "listAgents"
	SubmitClaim         = "submitClaim"
	EvaluateClaim       = "evaluateClaim"
	ListClaims          = "listClaims"
)

// Settlement routes. Outbound messages carry the route as msgType and responses come back with it.
const (
	RouteCreateProject       = "project/CreateProject"
	RouteUpdateProjectStatus = "project/UpdateProjectStatus"
	RouteCreateAgent         = "project/CreateAgent"
	RouteUpdateAgent         = "project/UpdateAgent"
	RouteCreateClaim         = "project/CreateClaim"
	RouteCreateEvaluation    = "project/CreateEvaluation"
)

// Store is a schemaless document collection. Every document created through it is scoped to a project.
type Store interface {
	Create(ctx context.Context, projectDID string, obj map[string]interface{}) (map[string]interface{}, error)
	FindOne(ctx context.Context, filter map[string]interface{}) (map[string]interface{}, error)
	Find(ctx context.Context, filter map[string]interface{}) ([]map[string]interface{}, error)
	UpdateOne(ctx context.Context, filter, set map[string]interface{}) error
	Exists(ctx context.Context, filter map[string]interface{}) (bool, error)
}

type capabilityManager interface {
	CreateCapabilities(ctx context.Context, projectDID string, caps []*capability.Capability) error
	AddCapability(ctx context.Context, projectDID, did, capabilityName string) error
	RemoveCapability(ctx context.Context, projectDID, did, capabilityName string) error
}

type walletManager interface {
	Generate(ctx context.Context) (*wallet.Wallet, error)
	Get(ctx context.Context, projectDID string) (*wallet.Wallet, error)
	SignForBlockchain(ctx context.Context, w *wallet.Wallet, msgType string, tx []byte) (*queue.OutboundMessage, error)
}

type processor interface {
	Process(ctx context.Context, rawArgs []byte, methodName, defaultProjectDID string, set transaction.CapabilitySet,
		model transaction.DomainModel, duplicate transaction.DuplicateCheck) (map[string]interface{}, error)
	Query(ctx context.Context, rawArgs []byte, methodName, defaultProjectDID string,
		fn transaction.QueryFunc) (interface{}, error)
}

type transactionLookup interface {
	Get(ctx context.Context, hash string) (*txlog.Record, error)
}

// Stores holds one Store per collection.
type Stores struct {
	Projects        Store
	ProjectStatuses Store
	Agents          Store
	AgentStatuses   Store
	Claims          Store
	Evaluations     Store
}

// Config holds the project service dependencies.
type Config struct {
	Processor    processor
	Capabilities capabilityManager
	Wallets      walletManager
	Stores       Stores
	// Transactions, when set, lets createProject reject a resent request before it provisions a wallet.
	Transactions transactionLookup
}

type method func(ctx context.Context, rawArgs []byte) (interface{}, error)

// Service implements the project RPC methods and their settlement completion handlers.
type Service struct {
	processor    processor
	capabilities capabilityManager
	wallets      walletManager
	stores       Stores
	transactions transactionLookup
	methods      map[string]method
}

// New creates the project service.
func New(cfg *Config) *Service {
	s := &Service{
		processor:    cfg.Processor,
		capabilities: cfg.Capabilities,
		wallets:      cfg.Wallets,
		stores:       cfg.Stores,
		transactions: cfg.Transactions,
	}

	s.methods = map[string]method{
		CreateProject: s.createProject,
		UpdateProjectStatus: s.commit(UpdateProjectStatus, RouteUpdateProjectStatus, s.stores.ProjectStatuses,
			s.versionCheck(s.stores.ProjectStatuses, nil), nil),
		CreateAgent: s.commit(CreateAgent, RouteCreateAgent, s.stores.Agents, s.agentExists, nil),
		UpdateAgentStatus: s.commit(UpdateAgentStatus, RouteUpdateAgent, s.stores.AgentStatuses,
			s.versionCheck(s.stores.AgentStatuses, []string{fieldAgentDID}), s.updateAgentCapabilities),
		SubmitClaim:   s.commit(SubmitClaim, RouteCreateClaim, s.stores.Claims, nil, nil),
		EvaluateClaim: s.commit(EvaluateClaim, RouteCreateEvaluation, s.stores.Evaluations, s.evaluationExists, nil),
		ListAgents:    s.query(ListAgents, s.stores.Agents, fieldRole, fieldAgentDID),
		ListClaims:    s.query(ListClaims, s.stores.Claims, fieldStatus, fieldCreator),
	}

	return s
}

// Methods returns the supported RPC method names in sorted order.
func (s *Service) Methods() []string {
	names := make([]string, 0, len(s.methods))

	for name := range s.methods {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Handle runs an RPC method over its raw arguments.
func (s *Service) Handle(ctx context.Context, methodName string, rawArgs []byte) (interface{}, error) {
	m, ok := s.methods[methodName]
	if !ok {
		return nil, resterr.NewCustomError(resterr.MethodNotFound, resterr.RPCComponent,
			fmt.Errorf("method %s not found", methodName))
	}

	return m(ctx, rawArgs)
}

// DefaultCapabilities returns the capability set a new project starts with. owner is the DID that signed the
// project creation.
func DefaultCapabilities(owner string) []*capability.Capability {
	return []*capability.Capability{
		{Capability: CreateProject, Template: templateProject, Allow: []string{owner}},
		{Capability: UpdateProjectStatus, Template: templateProject, Allow: []string{owner}},
		{Capability: CreateAgent, Template: templateAgent, Allow: []string{"did:sov:*", "did:ixo:*"}},
		{Capability: UpdateAgentStatus, Template: templateAgent, Allow: []string{owner}},
		{Capability: ListAgents, Template: templateAgent, Allow: []string{owner}},
		{Capability: SubmitClaim, Template: templateClaim, Allow: []string{}},
		{Capability: EvaluateClaim, Template: templateClaim, Allow: []string{}},
		{Capability: ListClaims, Template: templateClaim, Allow: []string{owner}},
	}
}
