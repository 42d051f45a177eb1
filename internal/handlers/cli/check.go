package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/fieldguard/internal/audit"
	"github.com/gabapcia/fieldguard/internal/pkg/x/chflow"

	"github.com/urfave/cli/v3"
)

// checkCommand returns a CLI command that checks a single manifest.
//
// Usage example:
//
//	fieldguard check --source ./vehicles.yaml --output json
func checkCommand(svc audit.Service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "check",
		Description: "Check a manifest for fields without a value.",
		Usage:       "Checks the manifest at a local path or http(s) URL and prints the report.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Usage:    "Manifest path or http(s) URL",
				Required: true,
			},
			newOutputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			report, err := svc.Check(ctx, c.String("source"))
			if err != nil {
				return err
			}

			if err := writeReport(out, c.String("output"), report); err != nil {
				return err
			}

			if !report.Passed() {
				return ErrViolationsFound
			}

			return nil
		},
	}
}

// batchCommand returns a CLI command that checks several manifests concurrently.
//
// Usage example:
//
//	fieldguard batch --source a.json --source https://example.com/b.yaml
func batchCommand(svc audit.Service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "batch",
		Description: "Check several manifests concurrently.",
		Usage:       "Checks every --source and prints one report per manifest. Fails if any check fails or finds violations.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "source",
				Usage:    "Manifest path or http(s) URL (repeatable)",
				Required: true,
			},
			newOutputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				format   = c.String("output")
				outcomes = chflow.Collect(ctx, svc.CheckAll(ctx, c.StringSlice("source")))
				errs     []error
				failed   bool
			)

			for _, o := range outcomes {
				if o.Err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", o.Source, o.Err))
					continue
				}

				if err := writeReport(out, format, o.Report); err != nil {
					return err
				}

				failed = failed || !o.Report.Passed()
			}

			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
			}

			if failed {
				errs = append(errs, ErrViolationsFound)
			}

			return errors.Join(errs...)
		},
	}
}

// reportCommand returns a CLI command that prints a stored report.
//
// Usage example:
//
//	fieldguard report --id 4bf92f35-77b3-4da6-a3ce-929d0e0e4736
func reportCommand(svc audit.Service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "report",
		Description: "Print a previously stored report.",
		Usage:       "Looks up a report by id. Requires report storage to be configured.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Report id",
				Required: true,
			},
			newOutputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			report, err := svc.Report(ctx, c.String("id"))
			if err != nil {
				return err
			}

			return writeReport(out, c.String("output"), report)
		},
	}
}
