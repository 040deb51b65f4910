package normalize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvaer/webrecon/internal/config"
	"github.com/maxvaer/webrecon/internal/dispatch"
	"github.com/maxvaer/webrecon/internal/registry"
)

func writeFfufFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffuf_result.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func contentDiscoveryNormalizer(ffufPath string, baseline int, ok bool) *Normalizer {
	return &Normalizer{
		opts: &config.Options{URL: "http://example.com", FfufOutput: ffufPath},
		log:  zerolog.Nop(),
		baseline: func(context.Context) (int, bool) {
			return baseline, ok
		},
	}
}

const ffufFixture = `{
  "results": [
    {"input": {"FUZZ": "admin"}, "status": 200, "length": 1234, "words": 100, "lines": 20},
    {"input": {"FUZZ": "login"}, "status": 200, "length": 987, "words": 80, "lines": 15}
  ]
}`

func TestContentDiscoveryFiltersBaselineLength(t *testing.T) {
	path := writeFfufFile(t, ffufFixture)
	n := contentDiscoveryNormalizer(path, 1234, true)

	got := n.normalizeContentDiscovery(context.Background())
	assert.Equal(t, "login [Status: 200, Size: 987, Words: 80, Lines: 15]", got)
}

func TestContentDiscoveryNoBaselineKeepsAll(t *testing.T) {
	path := writeFfufFile(t, ffufFixture)
	n := contentDiscoveryNormalizer(path, 0, false)

	got := n.normalizeContentDiscovery(context.Background())
	want := "admin [Status: 200, Size: 1234, Words: 100, Lines: 20]\n" +
		"login [Status: 200, Size: 987, Words: 80, Lines: 15]"
	assert.Equal(t, want, got)
}

func TestContentDiscoveryMissingFile(t *testing.T) {
	n := contentDiscoveryNormalizer(filepath.Join(t.TempDir(), "missing.json"), 0, false)
	assert.Equal(t, "", n.normalizeContentDiscovery(context.Background()))
}

func TestContentDiscoveryMalformedFile(t *testing.T) {
	path := writeFfufFile(t, "{not json")
	n := contentDiscoveryNormalizer(path, 0, false)
	assert.Equal(t, "", n.normalizeContentDiscovery(context.Background()))
}

func TestContentDiscoveryEmptyResults(t *testing.T) {
	path := writeFfufFile(t, `{"results": []}`)
	n := contentDiscoveryNormalizer(path, 500, true)
	assert.Equal(t, "", n.normalizeContentDiscovery(context.Background()))
}

func TestNormalizeContentDiscoveryEndToEnd(t *testing.T) {
	path := writeFfufFile(t, ffufFixture)
	n := contentDiscoveryNormalizer(path, 1234, true)

	res := n.Normalize(context.Background(),
		registry.ToolSpec{Name: "ffuf", Category: registry.ContentDiscovery},
		dispatch.Outcome{Tool: "ffuf", Raw: "console noise is ignored", ExitCode: 0})

	require.True(t, res.OK)
	assert.Equal(t, "login [Status: 200, Size: 987, Words: 80, Lines: 15]", res.Output)
}

func TestNormalizeContentDiscoveryFailedExit(t *testing.T) {
	path := writeFfufFile(t, ffufFixture)
	n := contentDiscoveryNormalizer(path, 0, false)

	res := n.Normalize(context.Background(),
		registry.ToolSpec{Name: "ffuf", Category: registry.ContentDiscovery},
		dispatch.Outcome{Tool: "ffuf", Raw: "bad wordlist", ExitCode: 1})

	assert.False(t, res.OK)
	assert.Equal(t, "Error: bad wordlist", res.Output)
}
