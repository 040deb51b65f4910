package normalize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvaer/webrecon/internal/dispatch"
	"github.com/maxvaer/webrecon/internal/registry"
)

func TestNormalizeVulnScanKeepsFindingLines(t *testing.T) {
	raw := `- Nikto v2.5.0
+ Target IP: 93.184.216.34
+-------------------------------------
+ Server: nginx/1.18.0
random noise line
+ /robots.txt: contains 2 entries`

	got := normalizeVulnScan(raw)
	want := `+ Target IP: 93.184.216.34
+ Server: nginx/1.18.0
+ /robots.txt: contains 2 entries`
	assert.Equal(t, want, got)
}

func TestNormalizeVulnScanDedupByBaseName(t *testing.T) {
	raw := `+ /admin/config.php: found
+ /admin/config.bak: found
+ /login.php: found`

	got := normalizeVulnScan(raw)
	want := `+ /admin/config.php: found
+ /login.php: found`
	assert.Equal(t, want, got)
}

func TestNormalizeVulnScanFirstOccurrenceWins(t *testing.T) {
	raw := "+ /a/index.php: first\n+ /b/index.html: second"
	got := normalizeVulnScan(raw)
	assert.Equal(t, "+ /a/index.php: first", got)
}

func TestVulnScanRecoveredHeuristic(t *testing.T) {
	assert.True(t, vulnScanRecovered("- Nikto v2.5.0\n+ Target IP: 1.2.3.4"))
	assert.True(t, vulnScanRecovered("- Nikto v2.5.0\n+ Server: nginx"))
	assert.False(t, vulnScanRecovered("- Nikto v2.5.0\nnothing else"))
	assert.False(t, vulnScanRecovered("+ Target IP: 1.2.3.4"))
}

func TestNormalizeVulnScanNonzeroExitWithMarkers(t *testing.T) {
	n := testNormalizer()
	raw := "- Nikto v2.5.0\n+ Server: nginx/1.18.0\n+ /backup.zip: archive found\n"
	res := n.Normalize(context.Background(),
		registry.ToolSpec{Name: "nikto", Category: registry.VulnScan},
		dispatch.Outcome{Tool: "nikto", Raw: raw, ExitCode: 1})

	require.True(t, res.OK)
	assert.Contains(t, res.Output, "+ /backup.zip: archive found")
}

func TestNormalizeVulnScanNonzeroExitWithoutMarkers(t *testing.T) {
	n := testNormalizer()
	res := n.Normalize(context.Background(),
		registry.ToolSpec{Name: "nikto", Category: registry.VulnScan},
		dispatch.Outcome{Tool: "nikto", Raw: "usage: nikto -h host\n", ExitCode: 2})

	assert.False(t, res.OK)
	assert.Equal(t, "Error: usage: nikto -h host", res.Output)
}

func TestFirstPathToken(t *testing.T) {
	assert.Equal(t, "/admin/config.php", firstPathToken("+ /admin/config.php: found"))
	assert.Equal(t, "", firstPathToken("+ Server: nginx"))
}
