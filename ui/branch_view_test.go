package ui

import (
	"bytes"
	"testing"
)

func TestRenderBranchList_PlainIsTabSeparated(t *testing.T) {
	rows := []BranchRow{
		{Prefix: "owner/BAR-2", Title: "BAR-2: newer"},
		{Prefix: "owner/BAR-1", Title: "BAR-1: init"},
	}
	got := RenderBranchList(rows, PlainStyles())
	want := "owner/BAR-2\tBAR-2: newer\nowner/BAR-1\tBAR-1: init\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderBranchList_NonTerminalWriterHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	got := RenderBranchList([]BranchRow{{Prefix: "owner/BAR-1", Title: "BAR-1: init"}}, NewStyles(&buf, false))
	if got != "owner/BAR-1\tBAR-1: init\n" {
		t.Fatalf("expected plain output, got %q", got)
	}
}

func TestRenderBranchList_Empty(t *testing.T) {
	if got := RenderBranchList(nil, PlainStyles()); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestPadOrTrim(t *testing.T) {
	if got := PadOrTrim("abc", 5); got != "abc  " {
		t.Fatalf("expected padded value, got %q", got)
	}
	if got := PadOrTrim("abcdef", 4); got != "abc…" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := PadOrTrim("abc", 0); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestNewStyles_FieldsRenderTheirInput(t *testing.T) {
	var buf bytes.Buffer
	for _, color := range []bool{true, false} {
		styles := NewStyles(&buf, color)
		for name, render := range map[string]func(string) string{
			"prefix":    styles.Prefix,
			"title":     styles.Title,
			"secondary": styles.Secondary,
		} {
			if got := render("owner/BAR-1"); got != "owner/BAR-1" {
				t.Fatalf("color=%v %s: expected plain text for a non-terminal writer, got %q", color, name, got)
			}
		}
	}
	label := PickerLabel(BranchRow{Prefix: "owner/BAR-1", Title: "BAR-1: init"}, 12, NewStyles(&buf, true))
	if label != "owner/BAR-1   BAR-1: init" {
		t.Fatalf("unexpected picker label %q", label)
	}
}
