/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPRequestHandler is a plain net/http handler function.
type HTTPRequestHandler func(http.ResponseWriter, *http.Request)

// HTTPHandler describes an endpoint served outside the echo controllers, such as /metrics.
type HTTPHandler interface {
	Path() string
	Method() string
	Handler() HTTPRequestHandler
}

type router interface {
	Add(method, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// Mount registers h on the echo router.
func Mount(r router, h HTTPHandler) {
	r.Add(h.Method(), h.Path(), echo.WrapHandler(http.HandlerFunc(h.Handler())))
}

// MountMux registers h on a standalone mux, for endpoints served on their own address.
func MountMux(mux *http.ServeMux, h HTTPHandler) {
	mux.HandleFunc(h.Path(), h.Handler())
}
