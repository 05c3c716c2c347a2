package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/readcircle/digest/pkg/digest/internalerr"
)

func TestRejectsEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "   \n\t\n  "} {
		_, err := Document(text)
		if !errors.Is(err, internalerr.ErrUnparsable) {
			t.Errorf("Document(%q) err = %v, want ErrUnparsable", text, err)
		}
	}
}

func TestRejectsShortTitle(t *testing.T) {
	_, err := Document("ab\nSection\n• a long enough bullet line")
	if !errors.Is(err, internalerr.ErrUnparsable) {
		t.Errorf("expected ErrUnparsable for 2-rune title, got %v", err)
	}
}

func TestRejectsDocumentWithNoBullets(t *testing.T) {
	text := "A Title\nHeading One\nHeading Two\nsome stray prose line"
	_, err := Document(text)
	if !errors.Is(err, internalerr.ErrUnparsable) {
		t.Errorf("expected ErrUnparsable when no section gains a bullet, got %v", err)
	}
}

func TestSectionWithShortBulletDropped(t *testing.T) {
	text := "My Title\nSection One\n• This is a valid bullet point\n- ok"
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if doc.Title != "My Title" {
		t.Errorf("title = %q, want %q", doc.Title, "My Title")
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	sec := doc.Sections[0]
	if sec.Heading != "Section One" {
		t.Errorf("heading = %q, want %q", sec.Heading, "Section One")
	}
	if len(sec.Bullets) != 1 || sec.Bullets[0] != "This is a valid bullet point" {
		t.Errorf("bullets = %v, want the single valid bullet", sec.Bullets)
	}
}

func TestImplicitOverviewSection(t *testing.T) {
	text := "Deep Work\n• Focused effort compounds over time\n• Shallow tasks crowd out real output"
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	if doc.Sections[0].Heading != "Overview" {
		t.Errorf("heading = %q, want Overview", doc.Sections[0].Heading)
	}
	if len(doc.Sections[0].Bullets) != 2 {
		t.Errorf("bullets = %d, want 2", len(doc.Sections[0].Bullets))
	}
}

func TestHeadingEqualToTitleIgnored(t *testing.T) {
	text := "The Big Idea\nThe Big Idea\n• bullets land in the implicit section"
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Heading != "Overview" {
		t.Errorf("sections = %+v, want one implicit Overview section", doc.Sections)
	}
}

func TestEmptySectionsFiltered(t *testing.T) {
	text := strings.Join([]string{
		"Book Notes",
		"Abandoned Heading",
		"Kept Heading",
		"• the only section that earned a bullet",
	}, "\n")
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	if doc.Sections[0].Heading != "Kept Heading" {
		t.Errorf("heading = %q, want %q", doc.Sections[0].Heading, "Kept Heading")
	}
	for _, s := range doc.Sections {
		if len(s.Bullets) == 0 {
			t.Errorf("retained section %q has no bullets", s.Heading)
		}
	}
}

func TestHeadingCleaning(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"1. Key Ideas:", "Key Ideas"},
		{"12) Closing Thoughts", "Closing Thoughts"},
		{"Takeaways:", "Takeaways"},
		{"Plain Heading", "Plain Heading"},
	}
	for _, tc := range cases {
		text := "A Title\n" + tc.line + "\n• a sufficiently long bullet here"
		doc, err := Document(text)
		if err != nil {
			t.Fatalf("Document(%q): %v", tc.line, err)
		}
		if doc.Sections[0].Heading != tc.want {
			t.Errorf("heading for %q = %q, want %q", tc.line, doc.Sections[0].Heading, tc.want)
		}
	}
}

func TestBareURLNotAHeading(t *testing.T) {
	text := strings.Join([]string{
		"A Title",
		"https://example.com/source",
		"Real Heading",
		"• a sufficiently long bullet here",
	}, "\n")
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if doc.Sections[0].Heading != "Real Heading" {
		t.Errorf("heading = %q, want %q", doc.Sections[0].Heading, "Real Heading")
	}
}

func TestOverlongLineDiscarded(t *testing.T) {
	long := strings.Repeat("x", 221)
	text := "A Title\n" + long + "\n• bullets attach to the implicit section"
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if doc.Sections[0].Heading != "Overview" {
		t.Errorf("overlong line opened a section: %q", doc.Sections[0].Heading)
	}
}

func TestBulletMarkerVariants(t *testing.T) {
	for _, marker := range []string{"•", "-", "*", "·", "▸", "▪", "▶", "►", "»", "◦", "‣"} {
		text := "A Title\n" + marker + " marker variants all count"
		doc, err := Document(text)
		if err != nil {
			t.Fatalf("Document with marker %q: %v", marker, err)
		}
		if got := doc.Sections[0].Bullets[0]; got != "marker variants all count" {
			t.Errorf("marker %q bullet = %q", marker, got)
		}
	}
}

func TestCorpusComposition(t *testing.T) {
	text := strings.Join([]string{
		"A Title",
		"First Section",
		"• bullet number one",
		"• bullet number two",
	}, "\n")
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	want := "A Title First Section bullet number one bullet number two"
	if doc.Corpus != want {
		t.Errorf("corpus = %q, want %q", doc.Corpus, want)
	}
}

func TestBlankLinesDoNotCloseSections(t *testing.T) {
	text := strings.Join([]string{
		"A Title",
		"Section One",
		"",
		"• first bullet of the section",
		"",
		"• second bullet of the section",
	}, "\n")
	doc, err := Document(text)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(doc.Sections) != 1 || len(doc.Sections[0].Bullets) != 2 {
		t.Errorf("sections = %+v, want one section with two bullets", doc.Sections)
	}
}
