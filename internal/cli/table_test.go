package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Value")

	table.AddRow("bg", "#ffffff")
	if len(table.rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(table.rows))
	}

	// Short rows are padded to the header count.
	table.AddRow("fg")
	if len(table.rows[1]) != 2 {
		t.Errorf("expected padded row of 2 cells, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("expected empty padding cell, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Token", "Value")
	table.AddRow("bg", "#ffffff")
	table.AddRow("focus-ring", "#1d4ed8")

	var buf bytes.Buffer
	table.Render(&buf)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "Token") {
		t.Errorf("header line missing Token: %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("separator line missing dashes: %q", lines[1])
	}

	// Columns are sized to the widest cell, so the Value column starts at
	// the same offset on every line.
	offset := strings.Index(lines[0], "Value")
	if offset < 0 {
		t.Fatalf("header missing Value column: %q", lines[0])
	}
	for _, line := range lines[2:] {
		if !strings.HasPrefix(line[offset:], "#") {
			t.Errorf("value column misaligned: %q", line)
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTable().Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("expected no output for headerless table, got %q", buf.String())
	}
}
