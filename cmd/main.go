// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for umaskexec.
package main

import (
	"context"
	"os"

	"github.com/janderssonse/umaskexec/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	app := cli.NewCLI()

	// On success with a command, Run does not return: the command has
	// replaced this process.
	return app.ReportError(app.Run(context.Background(), os.Args))
}
