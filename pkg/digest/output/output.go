// Package output defines the aggregate JSON document consumed by the
// downstream presentation layer. Field names are deliberately short;
// the reader treats them as a fixed wire format.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SourceLabel is the constant marker stamped on every record.
const SourceLabel = "RC"

// Section is one heading with its bullets.
type Section struct {
	Heading string   `json:"h"`
	Bullets []string `json:"b"`
}

// SummaryRecord is the persisted form of one parsed document.
// ID reflects processing order and is assigned before the summaries
// list is reversed.
type SummaryRecord struct {
	ID        int       `json:"id"`
	Source    string    `json:"w"`
	DateLabel string    `json:"d"`
	Title     string    `json:"s"`
	Tags      []string  `json:"t"`
	Sections  []Section `json:"sec"`
}

// Document is the single aggregate output. Xref and Cols are
// reserved for the presentation layer and always serialize as empty
// arrays, never null.
type Document struct {
	Summaries []SummaryRecord `json:"summaries"`
	Xref      []string        `json:"xref"`
	Cols      []string        `json:"cols"`
}

// NewDocument wraps records, normalizing nil slices so every field
// marshals as an array.
func NewDocument(records []SummaryRecord) Document {
	if records == nil {
		records = []SummaryRecord{}
	}
	return Document{
		Summaries: records,
		Xref:      []string{},
		Cols:      []string{},
	}
}

// Marshal renders the document as indented JSON.
func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Write serializes the document to path, creating the parent
// directory if needed. The file is written exactly once, at the end
// of a run.
func Write(d Document, path string) error {
	data, err := d.Marshal()
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
