package ui

import (
	"strings"
	"testing"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateTableCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth+10)

	got := TruncateTableCell(value)

	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if displayWidth(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d", tableCellMaxWidth, displayWidth(got))
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"ID", "TITLE"}
	rows := [][]string{{"1", "Respray"}, {"42", "Bumper"}}

	got := FormatTable(headers, rows)

	expected := "ID  TITLE\n1   Respray\n42  Bumper\n"
	if got != expected {
		t.Fatalf("expected aligned table, got %q", got)
	}
}

func TestFormatTableIgnoresANSIForAlignment(t *testing.T) {
	headers := []string{"DOT", "DATE"}
	rows := [][]string{{"\x1b[32m●\x1b[0m", "2024-06-01"}}

	got := FormatTable(headers, rows)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "2024-06-01") {
		t.Fatalf("expected the date column to align, got %q", lines[1])
	}
}

func TestDisplayWidthStripsANSI(t *testing.T) {
	if got := displayWidth("\x1b[1m\x1b[32mab\x1b[0m"); got != 2 {
		t.Fatalf("expected width 2, got %d", got)
	}
}
