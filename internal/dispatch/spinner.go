package dispatch

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Spinner renders a cosmetic progress indicator on stderr while an external
// tool runs. It carries no scan state; the only coordination with the caller
// is the stop channel. Stop waits for the render goroutine to finish before
// returning, so the status line never interleaves with later output.
type Spinner struct {
	message  string
	disabled bool
	stop     chan struct{}
	done     chan struct{}
}

// NewSpinner creates a spinner with the given status message. A disabled
// spinner is a no-op on Start and Stop.
func NewSpinner(message string, disabled bool) *Spinner {
	return &Spinner{
		message:  message,
		disabled: disabled,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins rendering in a background goroutine.
func (s *Spinner) Start() {
	if s.disabled {
		return
	}
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r%s %s", s.message, spinnerFrames[i%len(spinnerFrames)])
				i++
			case <-s.stop:
				fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
				return
			}
		}
	}()
}

// Stop signals the render goroutine and blocks until the status line has
// been cleared.
func (s *Spinner) Stop() {
	if s.disabled {
		return
	}
	close(s.stop)
	<-s.done
}

// stderrIsTerminal reports whether stderr is attached to a TTY; the spinner
// is only useful on an interactive terminal.
func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
