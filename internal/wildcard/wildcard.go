// Package wildcard suppresses content-discovery false positives caused by
// servers that answer every path with the same page. It probes one synthetic
// path to learn the baseline response size, then drops findings of exactly
// that size. Single sample, no retry: a server with per-path wildcard
// patterns will slip through, which is an accepted limitation.
package wildcard

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// probePath is deliberately implausible so it hits the server's catch-all
// handler rather than real content.
const probePath = "/zz_fake_wildcard_check_path_999"

// Finding is one content-discovery hit as reported by the external tool.
type Finding struct {
	Path   string
	Status int
	Length int
	Words  int
	Lines  int
}

// Prober learns the wildcard baseline for one target.
type Prober struct {
	targetURL string
	client    *http.Client
	log       zerolog.Logger
}

// NewProber creates a prober with a bounded request timeout so a dead target
// degrades to "no baseline" instead of hanging the pipeline.
func NewProber(targetURL string, timeout time.Duration, log zerolog.Logger) *Prober {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Prober{
		targetURL: strings.TrimRight(targetURL, "/"),
		client:    &http.Client{Timeout: timeout},
		log:       log,
	}
}

// Baseline issues one GET to the synthetic path and returns the response
// body length. Any network failure is logged as a warning and reported as
// "no baseline available"; it is never fatal.
func (p *Prober) Baseline(ctx context.Context) (int, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.targetURL+probePath, nil)
	if err != nil {
		p.log.Warn().Err(err).Msg("wildcard detection failed")
		return 0, false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warn().Err(err).Msg("wildcard detection failed")
		return 0, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.Warn().Err(err).Msg("wildcard detection failed")
		return 0, false
	}
	return len(body), true
}

// Apply returns every finding whose length differs from the baseline. With
// no baseline available it fails open and returns all findings unchanged:
// false positives are preferred over silently dropping real content.
func Apply(findings []Finding, baseline int, ok bool) []Finding {
	if !ok {
		return findings
	}
	kept := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Length != baseline {
			kept = append(kept, f)
		}
	}
	return kept
}
