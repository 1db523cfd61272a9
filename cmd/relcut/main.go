// Package main provides the entry point for the relcut CLI.
package main

import (
	"context"
	"os"

	"github.com/relcut/relcut/internal/cli"
)

// Build metadata injected at link time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	cli.CloseLogFile()
	os.Exit(cli.ExitCode(err))
}
