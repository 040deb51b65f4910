package report

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/maxvaer/webrecon/internal/normalize"
)

// CSVWriter persists the two-column report: one Tool/Result row per
// executed tool, in execution order.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSVWriter creates a CSV report writer. If path is empty, stdout is used.
func NewCSVWriter(path string) (*CSVWriter, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	}
	return &CSVWriter{w: csv.NewWriter(w), closer: closer}, nil
}

func (c *CSVWriter) WriteHeader() error {
	return c.w.Write([]string{"Tool", "Result"})
}

func (c *CSVWriter) WriteResult(r normalize.ScanResult) error {
	return c.w.Write([]string{r.Tool, r.Output})
}

func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// WriteCSV writes the full report to path in one call.
func WriteCSV(path string, results []normalize.ScanResult) error {
	w, err := NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.WriteResult(r); err != nil {
			return err
		}
	}
	return w.Flush()
}
