package wordlist

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default.txt
var embeddedWordlist string

// Load returns the discovery wordlist entries. If path is empty, the
// embedded default list is used. Blank lines and comments are skipped and
// duplicates removed, preserving first-seen order.
func Load(path string) ([]string, error) {
	var raw string
	if path == "" {
		raw = embeddedWordlist
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading wordlist %s: %w", path, err)
		}
		raw = string(data)
	}

	lines := strings.Split(raw, "\n")
	seen := make(map[string]struct{}, len(lines))
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		result = append(result, line)
	}
	return result, nil
}

// Materialize returns a file path the external content-discovery tool can
// read. A caller-supplied path is validated and returned as-is; otherwise
// the embedded list is written to dir (the OS temp dir when empty).
func Materialize(path, dir string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("wordlist %s: %w", path, err)
		}
		return path, nil
	}
	if dir == "" {
		dir = os.TempDir()
	}
	out := filepath.Join(dir, "webrecon_wordlist.txt")
	if err := os.WriteFile(out, []byte(embeddedWordlist), 0644); err != nil {
		return "", fmt.Errorf("writing embedded wordlist: %w", err)
	}
	return out, nil
}
