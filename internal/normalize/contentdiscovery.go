package normalize

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/maxvaer/webrecon/internal/wildcard"
)

// ffuf reports findings through a JSON file it writes itself, not through
// its console output.
type ffufResult struct {
	Input  map[string]string `json:"input"`
	Status int               `json:"status"`
	Length int               `json:"length"`
	Words  int               `json:"words"`
	Lines  int               `json:"lines"`
}

type ffufFile struct {
	Results []ffufResult `json:"results"`
}

// normalizeContentDiscovery reads the ffuf side-channel file, filters
// wildcard false positives against a freshly probed baseline, and formats
// one line per surviving finding. A missing or malformed results file
// degrades to an empty finding set.
func (n *Normalizer) normalizeContentDiscovery(ctx context.Context) string {
	findings, err := readFfufResults(n.opts.FfufOutput)
	if err != nil {
		n.log.Warn().Err(err).Msg("content-discovery results unavailable")
		return ""
	}

	baseline, ok := n.baseline(ctx)
	findings = wildcard.Apply(findings, baseline, ok)

	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = fmt.Sprintf("%s [Status: %d, Size: %d, Words: %d, Lines: %d]",
			f.Path, f.Status, f.Length, f.Words, f.Lines)
	}
	return strings.Join(lines, "\n")
}

func readFfufResults(path string) ([]wildcard.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var parsed ffufFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	findings := make([]wildcard.Finding, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		findings = append(findings, wildcard.Finding{
			Path:   r.Input["FUZZ"],
			Status: r.Status,
			Length: r.Length,
			Words:  r.Words,
			Lines:  r.Lines,
		})
	}
	return findings, nil
}
