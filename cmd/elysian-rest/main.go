/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package elysian-rest runs the transaction admission and settlement JSON-RPC service.
//
//	Schemes: http, https
//	License: SPDX-License-Identifier: Apache-2.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package main

import (
	"github.com/spf13/cobra"

	"github.com/ixoworld/elysian/cmd/elysian-rest/startcmd"
	"github.com/ixoworld/elysian/internal/pkg/log"
)

var logger = log.New("elysian-rest")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "elysian-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(startcmd.WithVersion(Version)))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run elysian-rest", log.WithError(err))
	}
}
