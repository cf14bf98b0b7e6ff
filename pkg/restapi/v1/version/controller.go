/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package version_test -source=controller.go

package version

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Version string
	// Methods are the JSON-RPC methods served on /api/request.
	Methods []string
}

type Controller struct {
	version string
	methods []string
}

type versionResponse struct {
	Version string `json:"version"`
}

type methodsResponse struct {
	Methods []string `json:"methods"`
}

func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		version: cfg.Version,
		methods: cfg.Methods,
	}

	router.GET("/version", func(ctx echo.Context) error {
		return c.Version(ctx)
	})
	router.GET("/version/methods", func(ctx echo.Context) error {
		return c.Methods(ctx)
	})

	return c
}

// Version returns the build version. GET /version.
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}

// Methods returns the supported RPC method names. GET /version/methods.
func (c *Controller) Methods(ctx echo.Context) error {
	methods := c.methods
	if methods == nil {
		methods = []string{}
	}

	return ctx.JSON(http.StatusOK, methodsResponse{Methods: methods})
}
