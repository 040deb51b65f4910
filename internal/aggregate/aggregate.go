package aggregate

import "github.com/maxvaer/webrecon/internal/normalize"

// Aggregator collects one ScanResult per executed tool in call order. It is
// the sole owner of the final collection; nothing mutates the results after
// the pipeline loop completes.
type Aggregator struct {
	results []normalize.ScanResult
}

// New returns an empty aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Record appends a result. Failed tools are recorded like successful ones;
// every selected tool contributes exactly one entry.
func (a *Aggregator) Record(r normalize.ScanResult) {
	a.results = append(a.results, r)
}

// All returns the collected results in execution order.
func (a *Aggregator) All() []normalize.ScanResult {
	out := make([]normalize.ScanResult, len(a.results))
	copy(out, a.results)
	return out
}

// Len reports how many results have been recorded.
func (a *Aggregator) Len() int {
	return len(a.results)
}
