package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/maxvaer/webrecon/internal/aggregate"
	"github.com/maxvaer/webrecon/internal/config"
	"github.com/maxvaer/webrecon/internal/dispatch"
	"github.com/maxvaer/webrecon/internal/normalize"
	"github.com/maxvaer/webrecon/internal/registry"
	"github.com/maxvaer/webrecon/internal/report"
	"github.com/maxvaer/webrecon/internal/wordlist"
)

// Run executes the full pipeline: tool selection, sequential dispatch,
// per-tool normalization, aggregation, and the CSV report plus console
// summary. Individual tool failures are recorded and reported, never
// fatal; only an invalid selection or a report write error fails the run.
func Run(ctx context.Context, opts *config.Options, log zerolog.Logger) error {
	specs, err := registry.Default().Select(opts.Tools)
	if err != nil {
		return err
	}

	// Work on a copy so the caller's Options stay untouched.
	run := *opts

	if selected(specs, registry.ContentDiscovery) {
		path, err := wordlist.Materialize(run.WordlistPath, "")
		if err != nil {
			return err
		}
		run.WordlistPath = path
		if dir := filepath.Dir(run.FfufOutput); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating output dir: %w", err)
			}
		}
	}

	log.Info().Str("target", run.URL).Str("ports", run.Ports).Msg("starting scan")

	disp := dispatch.New(&run, log)
	norm := normalize.New(&run, log)
	agg := aggregate.New()

	for _, spec := range specs {
		log.Info().Str("tool", spec.Name).Msg("running tool")
		outcome := disp.Run(ctx, spec)
		agg.Record(norm.Normalize(ctx, spec, outcome))
	}

	log.Info().Str("file", run.OutputFile).Msg("saving results")
	if err := report.WriteCSV(run.OutputFile, agg.All()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if !run.Quiet {
		report.PrintConsole(os.Stdout, agg.All(), run.NoColor)
	}

	log.Info().Int("tools", agg.Len()).Msg("scan complete")
	return nil
}

func selected(specs []registry.ToolSpec, c registry.Category) bool {
	for _, s := range specs {
		if s.Category == c {
			return true
		}
	}
	return false
}
