// Package digest turns a directory of loosely structured summary
// documents into one aggregate document for the presentation layer:
// each file becomes a title, bulleted sections, and 2-4 inferred
// topical tags.
package digest

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/readcircle/digest/internal/htmltext"
	"github.com/readcircle/digest/pkg/digest/output"
	"github.com/readcircle/digest/pkg/digest/parse"
	"github.com/readcircle/digest/pkg/digest/report"
	"github.com/readcircle/digest/pkg/digest/scan"
	"github.com/readcircle/digest/pkg/digest/store"
	"github.com/readcircle/digest/pkg/digest/tags"
)

// Builder is the aggregation driver: it owns the id counter and the
// run counters, applies the parser and classifier to every input,
// and assembles the output document.
type Builder struct {
	classifier *tags.Classifier
	archive    store.Store
	entropy    *ulid.MonotonicEntropy
	verbose    bool
	logf       func(format string, args ...any)
}

// Options configures a Builder.
type Options struct {
	Classifier *tags.Classifier
	// Archive is optional; when set, each run is recorded.
	Archive store.Store
	// Verbose additionally logs each skipped file by name.
	Verbose bool
	// Logf receives progress output; defaults to a no-op.
	Logf func(format string, args ...any)
}

// New creates a Builder with the given dependencies.
func New(opts Options) *Builder {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Builder{
		classifier: opts.Classifier,
		archive:    opts.Archive,
		entropy:    ulid.Monotonic(rand.Reader, 0),
		verbose:    opts.Verbose,
		logf:       logf,
	}
}

// Result is what one run produces.
type Result struct {
	Document output.Document
	Stats    report.Stats
	RunID    string
}

// Run scans inputDir, processes every candidate file in natural
// order, writes the aggregate document to outputPath, and optionally
// archives the run. A missing input directory is fatal; individual
// file failures are counted as skips and the run continues.
func (b *Builder) Run(ctx context.Context, inputDir, outputPath string) (Result, error) {
	started := time.Now()

	entries, err := scan.List(inputDir)
	if err != nil {
		return Result{}, err
	}
	b.logf("found %d candidate files in %s", len(entries), inputDir)

	collector := report.NewCollector()
	var records []output.SummaryRecord
	nextID := 1

	for _, entry := range entries {
		rec, ok := b.processFile(entry, nextID, collector)
		if !ok {
			continue
		}
		records = append(records, rec)
		nextID++
	}

	// Newest-processed-first; ids keep their assignment order.
	reversed := make([]output.SummaryRecord, len(records))
	for i, rec := range records {
		reversed[len(records)-1-i] = rec
	}

	doc := output.NewDocument(reversed)
	if err := output.Write(doc, outputPath); err != nil {
		return Result{}, err
	}

	stats := collector.Snapshot()
	result := Result{Document: doc, Stats: stats}

	if b.archive != nil {
		result.RunID = ulid.MustNew(ulid.Timestamp(started), b.entropy).String()
		if err := b.archive.RecordRun(ctx, archiveRun(result.RunID, started, stats, records)); err != nil {
			return Result{}, fmt.Errorf("archive run: %w", err)
		}
	}

	b.logf("wrote %s", outputPath)
	return result, nil
}

// processFile reads, parses, and classifies one input file. It
// returns ok=false on any per-file failure, after counting the skip.
func (b *Builder) processFile(entry scan.Entry, id int, collector *report.Collector) (output.SummaryRecord, bool) {
	raw, err := os.ReadFile(entry.Path)
	if err != nil {
		collector.Skip()
		if b.verbose {
			b.logf("skip %s: %v", entry.Name, err)
		}
		return output.SummaryRecord{}, false
	}

	text := string(raw)
	if strings.EqualFold(filepath.Ext(entry.Name), ".html") {
		text = htmltext.Extract(text)
	}

	parsed, err := parse.Document(text)
	if err != nil {
		collector.Skip()
		if b.verbose {
			b.logf("skip %s: %v", entry.Name, err)
		}
		return output.SummaryRecord{}, false
	}

	tagList := b.classifier.Classify(parsed.Corpus)

	sections := make([]output.Section, len(parsed.Sections))
	bullets := 0
	for i, s := range parsed.Sections {
		sections[i] = output.Section{Heading: s.Heading, Bullets: s.Bullets}
		bullets += len(s.Bullets)
	}

	collector.Record(tagList, bullets)

	return output.SummaryRecord{
		ID:        id,
		Source:    output.SourceLabel,
		DateLabel: scan.DateLabel(entry.ModTime, entry.HasTime),
		Title:     parsed.Title,
		Tags:      tagList,
		Sections:  sections,
	}, true
}

// archiveRun converts a finished run into its store form.
func archiveRun(id string, started time.Time, stats report.Stats, records []output.SummaryRecord) store.Run {
	archived := make([]store.Record, len(records))
	for i, rec := range records {
		archived[i] = store.Record{
			SummaryID:    rec.ID,
			Title:        rec.Title,
			DateLabel:    rec.DateLabel,
			Tags:         rec.Tags,
			SectionCount: len(rec.Sections),
		}
	}
	return store.Run{
		ID:        id,
		StartedAt: started,
		Parsed:    stats.Parsed,
		Skipped:   stats.Skipped,
		Bullets:   stats.Bullets,
		Records:   archived,
	}
}
