package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/gabapcia/fieldguard/internal/audit"

	"github.com/urfave/cli/v3"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// newOutputFlag returns the --output flag. Flags keep parse state, so every
// command gets its own instance.
func newOutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "output",
		Usage: "Output format: text or json",
		Value: outputText,
		Validator: func(s string) error {
			if s != outputText && s != outputJSON {
				return fmt.Errorf("unsupported output format %q", s)
			}
			return nil
		},
	}
}

// writeReport renders r to out in the given format.
//
// Text format lists each path once, with its messages joined by "; ":
//
//	report 4bf92f35-... (vehicles.json): 3 violation(s) in 3 field(s)
//	  bike: FromAnnotation
//	  car: FromValidator; must not be null
func writeReport(out io.Writer, format string, r audit.Report) error {
	if format == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if _, err := fmt.Fprintf(out, "report %s (%s): %d violation(s) in %d field(s)\n",
		r.ID, r.Source, len(r.Violations), r.Fields,
	); err != nil {
		return err
	}

	grouped := r.ByPath()
	for _, path := range slices.Sorted(maps.Keys(grouped)) {
		if _, err := fmt.Fprintf(out, "  %s: %s\n", path, strings.Join(grouped[path], "; ")); err != nil {
			return err
		}
	}

	return nil
}
