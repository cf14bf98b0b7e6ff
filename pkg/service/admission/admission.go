/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination admission_mocks_test.go -self_package mocks -package admission_test -source=admission.go -mock_names capabilityResolver=MockCapabilityResolver,schemaSource=MockSchemaSource,schemaValidator=MockSchemaValidator,signatureVerifier=MockSignatureVerifier,storeChecker=MockStoreChecker

package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/capability"
	"github.com/ixoworld/elysian/pkg/doc/validator/jsonschema"
	"github.com/ixoworld/elysian/pkg/observability/metrics"
	"github.com/ixoworld/elysian/pkg/observability/metrics/noop"
	"github.com/ixoworld/elysian/pkg/observability/tracing/attributeutil"
	"github.com/ixoworld/elysian/pkg/request"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
	"github.com/ixoworld/elysian/pkg/signature"
	"github.com/ixoworld/elysian/pkg/template"
)

var logger = log.New("admission")

// Stage names.
const (
	StageCapability = "capability"
	StageTemplate   = "template"
	StageSchema     = "schema"
	StagePolicy     = "policy"
	StageSignature  = "signature"
)

type capabilityResolver interface {
	Resolve(ctx context.Context, projectDID, method string) (*capability.Capability, error)
}

type schemaSource interface {
	GetSchema(ctx context.Context, templateType, name string) (*template.Schema, error)
}

type schemaValidator interface {
	Validate(data interface{}, templateKey string, schema []byte) error
}

type signatureVerifier interface {
	Verify(ctx context.Context, req *request.Request, requiresIdentityCheck bool,
		capability string) (*signature.Result, error)
}

type storeChecker interface {
	Ping(ctx context.Context) error
}

// Config holds the admission collaborators.
type Config struct {
	Capabilities capabilityResolver
	Templates    schemaSource
	Schemas      schemaValidator
	Signatures   signatureVerifier
	Store        storeChecker
	Tracer       trace.Tracer
	Metrics      metrics.Metrics
}

// Validated is a request that passed every admission stage.
type Validated struct {
	Request    *request.Request
	Capability *capability.Capability
}

type state struct {
	method     string
	req        *request.Request
	capability *capability.Capability
	schema     *template.Schema
}

type stage struct {
	name string
	run  func(ctx context.Context, st *state) error
}

// Service runs the ordered admission stages for a single request.
type Service struct {
	store   storeChecker
	tracer  trace.Tracer
	metrics metrics.Metrics
	stages  []stage

	capabilities capabilityResolver
	templates    schemaSource
	schemas      schemaValidator
	signatures   signatureVerifier
}

// New returns a new admission service.
func New(cfg *Config) *Service {
	s := &Service{
		store:        cfg.Store,
		tracer:       cfg.Tracer,
		metrics:      cfg.Metrics,
		capabilities: cfg.Capabilities,
		templates:    cfg.Templates,
		schemas:      cfg.Schemas,
		signatures:   cfg.Signatures,
	}

	if s.tracer == nil {
		s.tracer = trace.NewNoopTracerProvider().Tracer("")
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	s.stages = []stage{
		{name: StageCapability, run: s.resolveCapability},
		{name: StageTemplate, run: s.fetchSchema},
		{name: StageSchema, run: s.validateSchema},
		{name: StagePolicy, run: s.checkPolicy},
		{name: StageSignature, run: s.verifySignature},
	}

	return s
}

// Admit parses rawArgs and runs every stage in order. The first failing stage ends admission and its
// error is returned.
func (s *Service) Admit(ctx context.Context, rawArgs []byte, method, defaultProjectDID string) (*Validated, error) {
	ctx, span := s.tracer.Start(ctx, "admission.Admit")
	defer span.End()

	span.SetAttributes(
		attribute.String("method", method),
		attributeutil.RawJSON("args", rawArgs, attributeutil.WithRedacted("signature.signatureValue")),
	)

	start := time.Now()
	defer func() { s.metrics.AdmissionTime(method, time.Since(start)) }()

	if err := s.store.Ping(ctx); err != nil {
		return nil, s.fail(span, resterr.NewCustomError(resterr.StoreUnavailable, resterr.AdmissionComponent,
			fmt.Errorf("persistent store not available: %w", err)))
	}

	req, err := request.Parse(rawArgs, defaultProjectDID)
	if err != nil {
		return nil, s.fail(span, resterr.NewValidationError(resterr.AdmissionComponent, err.Error()))
	}

	span.SetAttributes(attribute.String("projectDid", req.ProjectDID))

	st := &state{method: method, req: req}

	for _, stg := range s.stages {
		if err = s.runStage(ctx, stg, st); err != nil {
			logger.Debug("request rejected", logfields.WithStage(stg.name), logfields.WithMethod(method),
				logfields.WithProjectDID(req.ProjectDID), log.WithError(err))

			return nil, s.fail(span, err)
		}
	}

	logger.Debug("request admitted", logfields.WithMethod(method), logfields.WithProjectDID(req.ProjectDID),
		logfields.WithSigner(req.Signer()))

	return &Validated{Request: req, Capability: st.capability}, nil
}

func (s *Service) runStage(ctx context.Context, stg stage, st *state) error {
	ctx, span := s.tracer.Start(ctx, "admission."+stg.name)
	defer span.End()

	if err := stg.run(ctx, st); err != nil {
		return s.fail(span, err)
	}

	return nil
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

func (s *Service) resolveCapability(ctx context.Context, st *state) error {
	c, err := s.capabilities.Resolve(ctx, st.req.ProjectDID, st.method)
	if err != nil {
		return err
	}

	st.capability = c

	return nil
}

func (s *Service) fetchSchema(ctx context.Context, st *state) error {
	schema, err := s.templates.GetSchema(ctx, st.capability.Template, st.req.Template)
	if err != nil {
		return err
	}

	st.schema = schema

	return nil
}

func (s *Service) validateSchema(_ context.Context, st *state) error {
	err := s.schemas.Validate(st.req.Raw, st.schema.Key, st.schema.Raw)
	if err == nil {
		return nil
	}

	var violation *jsonschema.ViolationError
	if errors.As(err, &violation) {
		return resterr.NewValidationError(resterr.SchemaValidatorComponent, violation.Error())
	}

	// An unusable schema is a registry problem, not a caller problem.
	return resterr.NewCustomError(resterr.RegistryUnavailable, resterr.SchemaValidatorComponent,
		fmt.Errorf("template %s: %w", st.schema.Key, err))
}

func (s *Service) checkPolicy(_ context.Context, st *state) error {
	if err := st.req.VerifyCapability(st.capability.Allow); err != nil {
		return resterr.NewValidationError(resterr.PolicyComponent, err.Error())
	}

	return nil
}

func (s *Service) verifySignature(ctx context.Context, st *state) error {
	result, err := s.signatures.Verify(ctx, st.req, st.capability.ValidateKYC, st.capability.Capability)
	if err != nil {
		return err
	}

	if !result.Valid {
		msg := "signature is not valid"
		if len(result.Errors) > 0 {
			msg = result.Errors[0]
		}

		return resterr.NewValidationError(resterr.SignatureComponent, msg)
	}

	return nil
}
