package aggregate

import (
	"testing"

	"github.com/maxvaer/webrecon/internal/normalize"
)

func TestRecordPreservesOrder(t *testing.T) {
	a := New()
	a.Record(normalize.ScanResult{Tool: "whatweb", Output: "Apache", OK: true})
	a.Record(normalize.ScanResult{Tool: "wafw00f", Output: "Error: boom", OK: false})
	a.Record(normalize.ScanResult{Tool: "nikto", Output: "+ /admin: found", OK: true})

	all := a.All()
	if len(all) != 3 {
		t.Fatalf("got %d results, want 3", len(all))
	}
	wantOrder := []string{"whatweb", "wafw00f", "nikto"}
	for i, w := range wantOrder {
		if all[i].Tool != w {
			t.Errorf("result %d: got %q, want %q", i, all[i].Tool, w)
		}
	}
	if all[1].OK {
		t.Error("failed tool must keep OK=false")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := New()
	a.Record(normalize.ScanResult{Tool: "nmap", OK: true})

	all := a.All()
	all[0].Tool = "mutated"

	if a.All()[0].Tool != "nmap" {
		t.Error("mutating the returned slice must not affect the aggregator")
	}
	if a.Len() != 1 {
		t.Errorf("got Len %d, want 1", a.Len())
	}
}
