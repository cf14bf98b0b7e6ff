/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package elysian_test -source=controller.go -mock_names methodHandler=MockMethodHandler

package elysian

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
)

var logger = log.New("rest-elysian")

// RequestEndpoint accepts JSON-RPC 2.0 calls.
const RequestEndpoint = "/api/request"

const jsonRPCVersion = "2.0"

// JSON-RPC error codes.
const (
	ParseErrorCode     = -32700
	InvalidRequestCode = -32600
	MethodNotFoundCode = -32601
	InvalidParamsCode  = -32602
	InternalErrorCode  = -32603
	ServerErrorCode    = -32000
)

type methodHandler interface {
	Handle(ctx context.Context, method string, rawArgs []byte) (interface{}, error)
}

type router interface {
	POST(path string, h echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) *echo.Route
}

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// Response is a JSON-RPC 2.0 response. Exactly one of Result and Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC 2.0 error object. Data carries the pipeline error code and component.
type Error struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    *ErrorData `json:"data,omitempty"`
}

// ErrorData identifies the pipeline failure.
type ErrorData struct {
	Code      string            `json:"code"`
	Component resterr.Component `json:"component,omitempty"`
}

// Config holds the controller dependencies.
type Config struct {
	Handler methodHandler
	Tracer  trace.Tracer
}

// Controller serves the JSON-RPC endpoint.
type Controller struct {
	handler methodHandler
	tracer  trace.Tracer
}

// NewController registers the JSON-RPC endpoint on router.
func NewController(router router, cfg *Config) *Controller {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("")
	}

	c := &Controller{
		handler: cfg.Handler,
		tracer:  tracer,
	}

	router.POST(RequestEndpoint, func(ctx echo.Context) error {
		return c.PostRequest(ctx)
	})

	return c
}

// PostRequest handles a JSON-RPC call.
// POST /api/request.
func (c *Controller) PostRequest(e echo.Context) error {
	body, err := io.ReadAll(e.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	var req Request

	if err = json.Unmarshal(body, &req); err != nil {
		return c.writeError(e, nil, http.StatusBadRequest, &Error{Code: ParseErrorCode, Message: "parse error"})
	}

	if req.JSONRPC != jsonRPCVersion || req.Method == "" {
		return c.writeError(e, req.ID, http.StatusBadRequest,
			&Error{Code: InvalidRequestCode, Message: "invalid request"})
	}

	ctx, span := c.tracer.Start(e.Request().Context(), "elysian.Request")
	defer span.End()

	span.SetAttributes(attribute.String("method", req.Method))

	logger.Debug("rpc request", logfields.WithMethod(req.Method))

	result, err := c.handler.Handle(ctx, req.Method, req.Params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		status, rpcErr := toRPCError(err)

		logger.Warn("rpc request failed", logfields.WithMethod(req.Method), log.WithHTTPStatus(status),
			log.WithError(err))

		return c.writeError(e, req.ID, status, rpcErr)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return c.writeError(e, req.ID, http.StatusInternalServerError,
			&Error{Code: InternalErrorCode, Message: fmt.Sprintf("marshal result: %v", err)})
	}

	return e.JSON(http.StatusOK, &Response{JSONRPC: jsonRPCVersion, ID: idOrNull(req.ID), Result: raw})
}

func (c *Controller) writeError(e echo.Context, id json.RawMessage, status int, rpcErr *Error) error {
	return e.JSON(status, &Response{JSONRPC: jsonRPCVersion, ID: idOrNull(id), Error: rpcErr})
}

// toRPCError maps a pipeline error to its HTTP status and JSON-RPC error.
func toRPCError(err error) (int, *Error) {
	var ce *resterr.CustomError

	if !errors.As(err, &ce) {
		return http.StatusInternalServerError, &Error{
			Code:    InternalErrorCode,
			Message: err.Error(),
			Data:    &ErrorData{Code: resterr.SystemError.Name()},
		}
	}

	code := ServerErrorCode

	switch ce.Code { //nolint:exhaustive
	case resterr.ValidationError, resterr.InvalidValue:
		code = InvalidParamsCode
	case resterr.MethodNotFound:
		code = MethodNotFoundCode
	case resterr.SystemError:
		code = InternalErrorCode
	}

	return ce.Code.HTTPStatus(), &Error{
		Code:    code,
		Message: ce.Message(),
		Data:    &ErrorData{Code: ce.Code.Name(), Component: ce.Component},
	}
}

func idOrNull(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}

	return id
}
