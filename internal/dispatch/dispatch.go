package dispatch

import (
	"bytes"
	"context"
	"net/url"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxvaer/webrecon/internal/config"
	"github.com/maxvaer/webrecon/internal/registry"
)

// Outcome captures everything a single tool invocation produced: the
// combined stdout+stderr text and the process exit code. Err is only set
// when the program could not be started at all.
type Outcome struct {
	Tool     string
	Raw      string
	ExitCode int
	Err      error
}

// Dispatcher executes one external tool at a time and captures its output.
type Dispatcher struct {
	opts *config.Options
	log  zerolog.Logger
}

// New creates a dispatcher bound to the run configuration.
func New(opts *config.Options, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{opts: opts, log: log}
}

// Run resolves the spec's argument placeholders and executes the tool,
// blocking until the child exits. There is deliberately no timeout: a hung
// external tool stalls the pipeline, which is a documented limitation of
// this design. Cancelling ctx kills the child.
//
// A spinner runs on stderr for the duration of the call; it is joined
// before Run returns so it cannot race with anything written afterwards.
func (d *Dispatcher) Run(ctx context.Context, spec registry.ToolSpec) Outcome {
	argv := d.resolveArgs(spec.Args)
	d.log.Debug().Str("tool", spec.Name).Strs("args", argv).Msg("dispatching")

	cmd := exec.CommandContext(ctx, spec.Program, argv...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	spinner := NewSpinner("Running "+spec.Name, d.opts.Quiet || !stderrIsTerminal())
	spinner.Start()
	err := cmd.Run()
	spinner.Stop()

	out := Outcome{Tool: spec.Name, Raw: buf.String()}
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	} else {
		// The program never started (missing binary, permission error).
		out.ExitCode = -1
		out.Err = err
	}
	return out
}

// resolveArgs substitutes the registry placeholders with concrete values
// from the run configuration.
func (d *Dispatcher) resolveArgs(args []string) []string {
	r := strings.NewReplacer(
		registry.PlaceholderHost, hostname(d.opts.URL),
		registry.PlaceholderPorts, d.opts.Ports,
		registry.PlaceholderURL, d.opts.URL,
		registry.PlaceholderFuzzURL, strings.TrimRight(d.opts.URL, "/")+"/FUZZ",
		registry.PlaceholderWordlist, d.opts.WordlistPath,
		registry.PlaceholderOutfile, d.opts.FfufOutput,
	)
	resolved := make([]string, len(args))
	for i, a := range args {
		resolved[i] = r.Replace(a)
	}
	return resolved
}

// hostname extracts the host part of the target URL for tools that take a
// bare host instead of a URL. Falls back to the raw string if it does not
// parse.
func hostname(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return target
	}
	return u.Hostname()
}
