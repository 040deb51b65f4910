// Package normalize turns raw tool output into the canonical short form
// shown in the report. Each tool category is bound to exactly one rule via
// the rules table; adding a tool means adding a category and a rule.
package normalize

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxvaer/webrecon/internal/config"
	"github.com/maxvaer/webrecon/internal/dispatch"
	"github.com/maxvaer/webrecon/internal/registry"
	"github.com/maxvaer/webrecon/internal/wildcard"
)

// ScanResult is the normalized record for one executed tool.
type ScanResult struct {
	Tool   string
	Output string
	OK     bool
}

// Normalizer applies the per-category rules. It owns the wildcard baseline
// probe used by the content-discovery rule.
type Normalizer struct {
	opts     *config.Options
	log      zerolog.Logger
	baseline func(ctx context.Context) (int, bool)
}

// New creates a normalizer bound to the run configuration.
func New(opts *config.Options, log zerolog.Logger) *Normalizer {
	prober := wildcard.NewProber(opts.URL, opts.ProbeTimeout, log)
	return &Normalizer{opts: opts, log: log, baseline: prober.Baseline}
}

type ruleFunc func(n *Normalizer, ctx context.Context, out dispatch.Outcome) string

// rules binds every category to its normalization rule. The category set is
// closed; a spec with an unmapped category passes its output through
// unchanged.
var rules = map[registry.Category]ruleFunc{
	registry.ServiceScan: func(_ *Normalizer, _ context.Context, out dispatch.Outcome) string {
		return normalizeServiceScan(out.Raw)
	},
	registry.Fingerprint: func(_ *Normalizer, _ context.Context, out dispatch.Outcome) string {
		return normalizeFingerprint(out.Raw)
	},
	registry.WAFDetect: func(_ *Normalizer, _ context.Context, out dispatch.Outcome) string {
		return normalizeWAFDetect(out.Raw)
	},
	registry.ContentDiscovery: func(n *Normalizer, ctx context.Context, _ dispatch.Outcome) string {
		return n.normalizeContentDiscovery(ctx)
	},
	registry.VulnScan: func(_ *Normalizer, _ context.Context, out dispatch.Outcome) string {
		return normalizeVulnScan(out.Raw)
	},
}

// Normalize converts one execution outcome into a ScanResult. Failures are
// recorded, never raised: a nonzero exit becomes an error-flavored result
// carrying the raw output, and the pipeline moves on to the next tool.
func (n *Normalizer) Normalize(ctx context.Context, spec registry.ToolSpec, out dispatch.Outcome) ScanResult {
	raw := strings.TrimSpace(out.Raw)

	ok := out.Err == nil && out.ExitCode == 0
	if !ok && out.Err == nil && spec.Category == registry.VulnScan && vulnScanRecovered(raw) {
		// nikto often exits nonzero after a successful scan; accept the
		// run when the output carries its version banner and a target or
		// server line.
		ok = true
	}

	if !ok {
		if raw == "" && out.Err != nil {
			raw = out.Err.Error()
		}
		n.log.Error().
			Str("tool", spec.Name).
			Int("exit_code", out.ExitCode).
			Msg("tool failed")
		return ScanResult{Tool: spec.Name, Output: "Error: " + raw, OK: false}
	}

	n.log.Info().Str("tool", spec.Name).Msg("tool executed successfully")

	rule, found := rules[spec.Category]
	if !found {
		return ScanResult{Tool: spec.Name, Output: raw, OK: true}
	}
	return ScanResult{Tool: spec.Name, Output: rule(n, ctx, out), OK: true}
}

// nmapDropPrefixes are the banner and informational lines nmap prints
// around the actual port table.
var nmapDropPrefixes = []string{
	"Starting Nmap",
	"Nmap scan report for",
	"Host is up",
	"Service detection performed.",
	"Nmap done:",
}

func normalizeServiceScan(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		drop := false
		for _, prefix := range nmapDropPrefixes {
			if strings.HasPrefix(line, prefix) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// normalizeFingerprint strips whatweb's leading URL echo from its one-line
// summary. The token is only removed when it actually looks like a URL, so
// the rule is stable under repeated application.
func normalizeFingerprint(raw string) string {
	s := strings.TrimSpace(raw)
	first, rest, found := strings.Cut(s, " ")
	if found && (strings.HasPrefix(first, "http://") || strings.HasPrefix(first, "https://")) {
		return strings.TrimSpace(rest)
	}
	return s
}

var wafVerdictMarkers = []string{"No WAF detected", "is behind"}

// normalizeWAFDetect picks the first verdict line out of wafw00f's output.
// Without a verdict the output passes through unchanged.
func normalizeWAFDetect(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		for _, marker := range wafVerdictMarkers {
			if strings.Contains(line, marker) {
				return strings.TrimSpace(line)
			}
		}
	}
	return strings.TrimSpace(raw)
}
