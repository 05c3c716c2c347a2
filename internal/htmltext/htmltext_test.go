package htmltext

import (
	"strings"
	"testing"
)

func TestExtractBlocksOnOwnLines(t *testing.T) {
	in := `<html><body><h1>Title Here</h1><p>First paragraph</p><ul><li>item one</li><li>item two</li></ul></body></html>`
	out := Extract(in)

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	want := []string{"Title Here", "First paragraph", "item one", "item two"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExtractSkipsScriptAndStyle(t *testing.T) {
	in := `<html><head><style>body { color: red }</style></head><body><p>visible</p><script>var hidden = 1;</script></body></html>`
	out := Extract(in)
	if strings.Contains(out, "hidden") || strings.Contains(out, "color") {
		t.Errorf("script/style content leaked into %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("visible text missing from %q", out)
	}
}

func TestExtractPlainTextPassesThrough(t *testing.T) {
	in := "Just Text\n• a bullet survives extraction"
	out := Extract(in)
	if !strings.Contains(out, "Just Text") || !strings.Contains(out, "• a bullet survives extraction") {
		t.Errorf("plain text mangled: %q", out)
	}
}
