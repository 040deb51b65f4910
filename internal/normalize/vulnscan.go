package normalize

import (
	"path"
	"strings"
)

// vulnScanRecovered reports whether nonzero-exit nikto output still looks
// like a completed scan.
func vulnScanRecovered(raw string) bool {
	return strings.Contains(raw, "Nikto v") &&
		(strings.Contains(raw, "+ Target") || strings.Contains(raw, "+ Server:"))
}

// normalizeVulnScan keeps nikto's finding lines (prefixed "+", excluding the
// "+-" separators) and collapses findings that point at the same path base
// name regardless of extension: /admin/config.php and /admin/config.bak
// count as one finding, first occurrence wins.
func normalizeVulnScan(raw string) string {
	seen := make(map[string]struct{})
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+-") {
			continue
		}
		if p := firstPathToken(line); p != "" {
			base := strings.TrimSuffix(path.Base(p), path.Ext(p))
			if _, dup := seen[base]; dup {
				continue
			}
			seen[base] = struct{}{}
		}
		kept = append(kept, strings.TrimSpace(line))
	}
	return strings.Join(kept, "\n")
}

// firstPathToken returns the first whitespace-delimited token starting with
// "/", or "" when the line carries no path.
func firstPathToken(line string) string {
	for _, tok := range strings.Fields(line) {
		if strings.HasPrefix(tok, "/") {
			return tok
		}
	}
	return ""
}
