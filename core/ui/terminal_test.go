package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRendersHeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	tbl := w.NewTable("Proposal", "Duration (days)", "Price").AlignRight(1, 2)
	tbl.AddRow("Base (balanced time and cost)", "10.0", "10,000,000")
	tbl.AddRow("Executive (rush, dedicated)", "5.0", "16,000,000", "ignored")
	tbl.Render()

	out := buf.String()
	for _, want := range []string{"Proposal", "Duration (days)", "Base (balanced time and cost)", "16,000,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ignored") {
		t.Error("extra cells beyond the headers should be dropped")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("noColor writer emitted ANSI escapes")
	}
}

func TestTableMarkdown(t *testing.T) {
	w := NewWriter(nil, true)

	tbl := w.NewTable("Proposal", "Price").AlignRight(1)
	tbl.AddRow("Base | balanced", "10,000,000")
	tbl.AddRow("Executive", "16,000,000")

	lines := strings.Split(tbl.Markdown(), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header, separator and 2 rows:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "| Proposal ") || !strings.HasSuffix(lines[0], "|") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Trim(lines[1], "|-") != "" {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], `| Base \| balanced `) {
		t.Errorf("pipe in cell not escaped: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], " 16,000,000 |") {
		t.Errorf("row = %q", lines[3])
	}
}

func TestSummaryBox(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	box := w.NewSummaryBox("Summary")
	box.Add("Average", "10,714,286").Add("Range", "7,000,000 to 16,000,000")
	box.Note = "Prices above include 0% platform commission."
	box.Render()

	out := buf.String()
	for _, want := range []string{"Summary", "Average: ", "Range:   7,000,000 to 16,000,000", "platform commission"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Header("Proposal")
	w.SubHeader("Tiers")
	w.Success("wrote %s", "quote.html")
	w.Warning("fee is %d%%", 0)
	w.Error("failed")
	w.Info("opening %s", "browser")

	out := buf.String()
	for _, want := range []string{"━━━ Proposal ━━━", "▸ Tiers", "✓ wrote quote.html", "⚠ fee is 0%", "✗ failed", "ℹ opening browser"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
