// Package report holds the destinations for engine observations: console,
// structured logs, CSV/JSONL artifacts and Prometheus metrics.
package report

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"evokit/internal/ga"
)

// Console prints progress in a compact line format:
//
//	gen: 100; obj: 3; best ind.: <1110...>
//	<< FINISHED >> best obj: 0
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a console reporter writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Progress(p ga.Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "gen: %d; obj: %s%s\n", p.Generation, formatObjective(p.Objective), rendering(p.Individual))
}

func (c *Console) RunFinished(s ga.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "<< FINISHED >> best obj: %s%s\n", formatObjective(s.Objective), rendering(s.Individual))
}

func (c *Console) BatchFinished(results []ga.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, "<<< Results >>>")
	for _, s := range results {
		fmt.Fprintf(c.w, "<< Run %d >> best obj: %s%s\n", s.Run, formatObjective(s.Objective), rendering(s.Individual))
	}
}

func rendering(s string) string {
	if s == "" {
		return ""
	}
	return "; best ind.: " + s
}

func formatObjective(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
