// Command trueclause is the TrueClause CLI: audit contracts, draft
// negotiation emails, browse rulebooks and run the HTTP API.
package main

import (
	"os"

	"github.com/Gopesh111/TrueClause/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	// Execute prints the error itself.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

//Personal.AI order the ending
