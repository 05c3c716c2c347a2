package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/readcircle/digest/pkg/digest/internalerr"
)

// Length bounds, measured in runes.
const (
	minTitleLen   = 3
	minBulletLen  = 6 // bullet text must be strictly longer than 5
	minHeadingLen = 4
	maxHeadingLen = 220
	minCleanedLen = 3
)

// bulletMarkers are the glyphs that mark a line as a list item
// rather than a heading.
var bulletMarkers = []rune{'•', '-', '*', '·', '▸', '▪', '▶', '►', '»', '◦', '‣'}

// implicitHeading names the section opened for bullets that appear
// before any heading line.
const implicitHeading = "Overview"

// Section is one heading with its bullet lines, in source order.
type Section struct {
	Heading string
	Bullets []string
}

// Parsed is the structured form of one summary document.
// Corpus is the concatenated title, headings, and bullets used
// for tag scoring.
type Parsed struct {
	Title    string
	Sections []Section
	Corpus   string
}

// builder is the parser's state machine. It has two states: no open
// section (open == nil) and section open. Opening a section closes
// the previous one, which stays in sections regardless of whether it
// gained bullets; empty sections are filtered at the end.
type builder struct {
	sections []*Section
	open     *Section
}

func (b *builder) openSection(heading string) {
	s := &Section{Heading: heading}
	b.sections = append(b.sections, s)
	b.open = s
}

func (b *builder) addBullet(text string) {
	if b.open == nil {
		b.openSection(implicitHeading)
	}
	b.open.Bullets = append(b.open.Bullets, text)
}

// retained returns the sections that collected at least one bullet,
// preserving order.
func (b *builder) retained() []Section {
	var out []Section
	for _, s := range b.sections {
		if len(s.Bullets) > 0 {
			out = append(out, *s)
		}
	}
	return out
}

// Document parses raw summary text into a title and bulleted
// sections. It rejects documents with no non-blank lines, a title
// shorter than 3 runes, or no section that collected a bullet;
// rejections wrap internalerr.ErrUnparsable.
func Document(text string) (*Parsed, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	// Title: first non-blank line.
	idx := 0
	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	if idx == len(lines) {
		return nil, fmt.Errorf("%w: no content", internalerr.ErrUnparsable)
	}
	title := strings.TrimSpace(lines[idx])
	if utf8.RuneCountInString(title) < minTitleLen {
		return nil, fmt.Errorf("%w: title too short", internalerr.ErrUnparsable)
	}

	b := &builder{}
	for _, line := range lines[idx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bullet, ok := stripBulletMarker(trimmed); ok {
			if utf8.RuneCountInString(bullet) >= minBulletLen {
				b.addBullet(bullet)
			}
			continue
		}
		if heading, ok := cleanHeading(trimmed); ok && heading != title {
			b.openSection(heading)
		}
		// Anything else is noise: no state change.
	}

	sections := b.retained()
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no bulleted sections", internalerr.ErrUnparsable)
	}

	return &Parsed{
		Title:    title,
		Sections: sections,
		Corpus:   buildCorpus(title, sections),
	}, nil
}

// stripBulletMarker reports whether the line starts with a bullet
// glyph and returns the text after the marker and any whitespace.
func stripBulletMarker(line string) (string, bool) {
	r, size := utf8.DecodeRuneInString(line)
	for _, marker := range bulletMarkers {
		if r == marker {
			return strings.TrimLeft(line[size:], " \t"), true
		}
	}
	return "", false
}

// cleanHeading decides whether a non-bullet line is a heading and
// normalizes it: enumerator prefixes like "3." or "12)" are stripped,
// as is a single trailing colon. Bare URLs and lines outside the
// 4..220 rune range are not headings.
func cleanHeading(line string) (string, bool) {
	n := utf8.RuneCountInString(line)
	if n < minHeadingLen || n > maxHeadingLen {
		return "", false
	}
	if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
		return "", false
	}
	cleaned := stripEnumerator(line)
	cleaned = strings.TrimSuffix(cleaned, ":")
	cleaned = strings.TrimSpace(cleaned)
	if utf8.RuneCountInString(cleaned) < minCleanedLen {
		return "", false
	}
	return cleaned, true
}

// stripEnumerator removes a leading "digits followed by '.' or ')'"
// run plus trailing whitespace, e.g. "2) Lessons" -> "Lessons".
func stripEnumerator(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return line
	}
	if line[i] != '.' && line[i] != ')' {
		return line
	}
	rest := line[i+1:]
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

// buildCorpus joins the title with every retained heading and bullet
// using single spaces; the classifier scores this string.
func buildCorpus(title string, sections []Section) string {
	parts := []string{title}
	for _, s := range sections {
		parts = append(parts, s.Heading)
		parts = append(parts, s.Bullets...)
	}
	return strings.Join(parts, " ")
}
