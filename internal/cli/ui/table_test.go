package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, true, "Ordinal", "Name", "Constant")
	table.AddRow("0", "red", "ColorRed")
	table.AddRow("1", "green", "ColorGreen")
	table.AddRow("2", "blue", "ColorBlue", "extra")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Ordinal  Name   Constant" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "───────  ─────  ──────────" {
		t.Errorf("rule = %q", lines[1])
	}
	if lines[3] != "1        green  ColorGreen" {
		t.Errorf("row = %q", lines[3])
	}
	if strings.Contains(buf.String(), "extra") {
		t.Error("cells beyond the headers should be dropped")
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestTableWithoutHeaders(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, true)
	table.AddRow("x")
	table.Render()

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKeyValueTable(&buf, true)
	kv.AddRow("Enum", "Color")
	kv.AddRow("Values", "3")
	kv.Render()

	want := "Enum:   Color\nValues: 3\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Color", true)

	if buf.String() != "Color\n─────\n" {
		t.Errorf("got %q", buf.String())
	}
}
