/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ixoworld/elysian/internal/pkg/log"
)

var logger = log.New("rest-err")

// HTTPErrorHandler writes err to the echo response.
func HTTPErrorHandler(err error, c echo.Context) {
	code, message := processError(err)

	logger.Error("request failed", log.WithPath(c.Request().RequestURI), log.WithHTTPStatus(code),
		log.WithError(err))

	sendResponse(c, code, message)
}

func sendResponse(c echo.Context, code int, message interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}

	if err != nil {
		logger.Error("write http response", log.WithError(err))
	}
}

func processError(err error) (int, interface{}) {
	var (
		he *echo.HTTPError
		ce *CustomError
	)

	switch {
	case errors.As(err, &ce):
		return ce.HTTPCodeMsg()
	case errors.As(err, &he):
		message := he.Message
		if he.Internal != nil {
			message = err.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return he.Code, message
	default:
		return http.StatusInternalServerError, map[string]interface{}{
			"code":    SystemError.Name(),
			"message": err.Error(),
		}
	}
}
