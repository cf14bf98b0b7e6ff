/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ixoworld/elysian/internal/pkg/log"
)

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go

const logLevelsEndpoint = "/loglevels"

var logger = log.New("logapi")

// Controller exposes the module log levels at runtime.
type Controller struct{}

type router interface {
	GET(path string, h echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) *echo.Route
}

func NewController(router router) *Controller {
	c := &Controller{}

	router.GET(logLevelsEndpoint, func(ctx echo.Context) error {
		return c.GetLogLevels(ctx)
	})

	router.POST(logLevelsEndpoint, func(ctx echo.Context) error {
		return c.PostLogLevels(ctx)
	})

	return c
}

// GetLogLevels returns the current log spec.
// (GET /loglevels).
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.String(http.StatusOK, log.GetSpec())
}

// PostLogLevels updates log levels. The body is a spec such as "admission=debug:settlement=warn:info".
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	logLevelBytes, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	logLevels := string(logLevelBytes)

	if err := log.SetSpec(logLevels); err != nil {
		return fmt.Errorf("failed to set log spec: %w", err)
	}

	logger.Info("log levels modified", zap.String("spec", logLevels))

	return ctx.NoContent(http.StatusOK)
}
