package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/tahmidr/pharmatrack/internal/service"
)

// ConsoleSink prints each expiry report the way the interactive session
// expects to see it. Writes are serialized so a report never interleaves
// with itself when the menu loop is printing at the same time.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Publish(report service.ExpiryReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, "\n--- Expiry Checker Running ---")
	if len(report.Expired) == 0 {
		fmt.Fprintln(s.out, "No expired medicines found.")
		return
	}
	for _, item := range report.Expired {
		fmt.Fprintf(s.out, "Medicine ID: %s (%s) has expired!\n", item.ID, item.Name)
	}
}
