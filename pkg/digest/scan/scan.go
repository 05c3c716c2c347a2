package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/readcircle/digest/pkg/digest/internalerr"
)

// fallbackLabel is used when a file's modification time is unknown.
const fallbackLabel = "2025"

// Entry is one candidate input file in scan order.
type Entry struct {
	Name    string
	Path    string
	ModTime time.Time
	HasTime bool
}

// List returns the .txt and .html files in dir, natural-sorted by
// filename. A missing directory wraps internalerr.ErrMissingInput.
func List(dir string) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", internalerr.ErrMissingInput, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", internalerr.ErrMissingInput, dir)
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".txt" && ext != ".html" {
			continue
		}
		e := Entry{Name: de.Name(), Path: filepath.Join(dir, de.Name())}
		if fi, err := de.Info(); err == nil {
			e.ModTime = fi.ModTime()
			e.HasTime = true
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return NaturalLess(entries[i].Name, entries[j].Name)
	})
	return entries, nil
}

// NaturalLess orders filenames by their first numeric run, then
// lexicographically as a tie-break: a2.txt before a10.txt,
// 2-foo.txt before 10-foo.txt.
func NaturalLess(a, b string) bool {
	na, aok := firstNumber(a)
	nb, bok := firstNumber(b)
	switch {
	case aok && bok && na != nb:
		return na < nb
	case aok != bok:
		// Numbered names sort before unnumbered ones.
		return aok
	}
	return a < b
}

// firstNumber parses the first run of digits found in s.
func firstNumber(s string) (int64, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	var n int64
	for i := start; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
	}
	return n, true
}

// DateLabel formats a modification time as a short month-day label
// ("Jan 2"). Without a usable time it returns the fixed fallback
// year string.
func DateLabel(t time.Time, ok bool) string {
	if !ok || t.IsZero() {
		return fallbackLabel
	}
	return t.Format("Jan 2")
}
