package main

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrbonezy/git-linear-branch/branch"
)

func TestRunVersionFlag(t *testing.T) {
	oldVersion := version
	version = "v1.4.0"
	t.Cleanup(func() { version = oldVersion })

	h := newHarness(t)
	if err := h.invoke("--version"); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if got := strings.TrimSpace(h.out.String()); got != "v1.4.0" {
		t.Fatalf("expected %q, got %q", "v1.4.0", got)
	}
}

func TestCompletionScript(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		h := newHarness(t)
		if err := h.invoke("--completion", shell); err != nil {
			t.Fatalf("%s completion: %v", shell, err)
		}
		if !strings.Contains(h.out.String(), "git-linear-branch") {
			t.Fatalf("expected %s script to mention the command, got %q", shell, h.out.String())
		}
	}

	h := newHarness(t)
	err := h.invoke("--completion", "tcsh")
	if err == nil || !strings.Contains(err.Error(), "unsupported shell tcsh") {
		t.Fatalf("expected unsupported shell error, got %v", err)
	}
}

func TestCompletePrefixes(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newHarness(t,
		branch.Record{Prefix: "owner/BAR-1", Name: "owner/BAR-1-a", LastUsed: at, OriginalTitle: "BAR-1: a"},
		branch.Record{Prefix: "owner/BAZ-2", Name: "owner/BAZ-2-b", LastUsed: at.Add(time.Hour), OriginalTitle: "BAZ-2: b"},
		branch.Record{Prefix: "other/QUX-3", Name: "other/QUX-3", LastUsed: at, OriginalTitle: "QUX-3"},
	)

	got, directive := h.app.completePrefixes(nil, nil, "own")
	if directive&cobra.ShellCompDirectiveNoFileComp == 0 {
		t.Fatalf("expected no file completion")
	}
	want := []string{"owner/BAZ-2\tBAZ-2: b", "owner/BAR-1\tBAR-1: a"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got, _ = h.app.completePrefixes(nil, []string{"owner/BAR-1"}, "")
	if len(got) != 0 {
		t.Fatalf("expected no suggestions after the first argument, got %q", got)
	}
}

func TestMatchesCompletionPrefix(t *testing.T) {
	cases := []struct {
		value  string
		prefix string
		want   bool
	}{
		{value: "owner/BAR-1", prefix: "", want: true},
		{value: "owner/BAR-1", prefix: "OWNER/bar", want: true},
		{value: "owner/BAR-1", prefix: "other", want: false},
	}
	for _, tc := range cases {
		if got := matchesCompletionPrefix(tc.value, tc.prefix); got != tc.want {
			t.Fatalf("matchesCompletionPrefix(%q, %q)=%v, want %v", tc.value, tc.prefix, got, tc.want)
		}
	}
}
