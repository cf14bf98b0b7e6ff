/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/ixoworld/elysian/pkg/observability/health/healthutil"
)

const (
	healthCheckEndpoint = "/healthcheck"
	checkTimeout        = 10 * time.Second
)

type router interface {
	GET(path string, h echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) *echo.Route
}

// Controller for health check API.
type Controller struct {
	handler http.Handler
}

// NewController registers the health check endpoint. The endpoint reports 503 when any check is down.
func NewController(router router, checks []health.Check) *Controller {
	times := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(checkTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(times)),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	c := &Controller{
		handler: health.NewHandler(
			health.NewChecker(opts...),
			health.WithResultWriter(healthutil.NewJSONResultWriter(times)),
		),
	}

	router.GET(healthCheckEndpoint, c.GetHealthcheck)

	return c
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.handler.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
