package store

import (
	"context"
	"time"
)

// Store archives build runs so successive digests can be compared.
// Archiving is optional: the driver works without a store.
type Store interface {
	Close() error

	// Runs
	RecordRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one completed build with its counters and records.
type Run struct {
	ID        string // ULID, assigned by the driver
	StartedAt time.Time
	Parsed    int
	Skipped   int
	Bullets   int
	Records   []Record
}

// Record is the archived trace of one SummaryRecord.
type Record struct {
	SummaryID    int
	Title        string
	DateLabel    string
	Tags         []string
	SectionCount int
}
