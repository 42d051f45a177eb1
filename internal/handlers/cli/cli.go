package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/gabapcia/fieldguard/internal/audit"

	"github.com/urfave/cli/v3"
)

// ErrViolationsFound is returned when a checked manifest has at least one
// violation, so shell callers get a non-zero exit status.
var ErrViolationsFound = errors.New("violations found")

// newApp builds the root command. All command output goes to out.
func newApp(svc audit.Service, out io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "fieldguard",
		Description:           "Command-line interface for checking field manifests for missing values.",
		Usage:                 "fieldguard [command] [flags]",
		Writer:                out,
		Commands: []*cli.Command{
			checkCommand(svc, out),
			batchCommand(svc, out),
			reportCommand(svc, out),
		},
	}
}

// Run initializes and executes the fieldguard CLI application.
//
// It registers all available commands:
//
//   - `check`: Checks a single manifest.
//   - `batch`: Checks several manifests concurrently.
//   - `report`: Prints a stored report.
//
// Command output is written to stdout.
func Run(ctx context.Context, svc audit.Service) error {
	return newApp(svc, os.Stdout).Run(ctx, os.Args)
}
