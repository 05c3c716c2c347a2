// Package report aggregates per-run counters for console diagnostics.
// The numbers are informational only; the output document does not
// depend on them.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Collector accumulates counters as the driver processes files.
type Collector struct {
	parsed  int
	skipped int
	bullets int
	tagFreq map[string]int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{tagFreq: make(map[string]int)}
}

// Record consumes one successfully parsed document's tags and bullet
// count.
func (c *Collector) Record(tags []string, bulletCount int) {
	c.parsed++
	c.bullets += bulletCount
	for _, tag := range tags {
		c.tagFreq[tag]++
	}
}

// Skip counts one rejected or unreadable file.
func (c *Collector) Skip() {
	c.skipped++
}

// Stats is a point-in-time snapshot of the collector.
type Stats struct {
	Parsed  int
	Skipped int
	Bullets int
	TagFreq map[string]int
}

// Snapshot copies the current counters.
func (c *Collector) Snapshot() Stats {
	freq := make(map[string]int, len(c.tagFreq))
	for tag, n := range c.tagFreq {
		freq[tag] = n
	}
	return Stats{
		Parsed:  c.parsed,
		Skipped: c.skipped,
		Bullets: c.bullets,
		TagFreq: freq,
	}
}

// Render formats the snapshot as the progress table the CLI prints:
// parsed/skipped counts, tag histogram sorted by descending count
// (name as tie-break), and the total bullet count.
func (s Stats) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parsed: %d  skipped: %d  bullets: %d\n", s.Parsed, s.Skipped, s.Bullets)

	type kv struct {
		tag string
		n   int
	}
	rows := make([]kv, 0, len(s.TagFreq))
	for tag, n := range s.TagFreq {
		rows = append(rows, kv{tag, n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].n == rows[j].n {
			return rows[i].tag < rows[j].tag
		}
		return rows[i].n > rows[j].n
	})
	for _, row := range rows {
		fmt.Fprintf(&b, "  %-18s %d\n", row.tag, row.n)
	}
	return b.String()
}
