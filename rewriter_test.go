package main

import (
	"strings"
	"testing"
)

func TestPassThroughUnrecognized(t *testing.T) {
	lines := []Line{"clc", "adc.b tcc__r5", "rts"}
	out, opted := RunOnce(lines, nil)
	if opted != 0 {
		t.Fatalf("expected no rule to fire, got opted=%d", opted)
	}
	if len(out) != len(lines) {
		t.Fatalf("got %v, want %v", out, lines)
	}
	for i := range lines {
		if out[i] != lines[i] {
			t.Errorf("line %d: got %q, want %q", i, out[i], lines[i])
		}
	}
}

func TestNeverExpands(t *testing.T) {
	lines := []Line{
		"sta.b tcc__r1",
		"lda.b tcc__r1",
		"rts",
	}
	out, _ := RunOnce(lines, nil)
	if len(out) > len(lines) {
		t.Fatalf("output grew from %d lines to %d", len(lines), len(out))
	}
}

func TestLabelsPreserved(t *testing.T) {
	lines := []Line{
		"loop:",
		"sta.b tcc__r1",
		"lda.b tcc__r1",
		"bra loop",
	}
	out, _ := RunOnce(lines, nil)
	if out[0] != "loop:" {
		t.Errorf("expected leading label preserved, got %q", out[0])
	}
}

func TestRunReachesFixpoint(t *testing.T) {
	// R5 drops a reload, then the store that fed it becomes the new
	// T[i]; nothing in this input chains further, so a second pass
	// should fire nothing and Run should stop after exactly one
	// rewriting pass.
	lines := []Line{
		"sta.b tcc__r1",
		"lda.b tcc__r1",
		"rts",
	}
	first, opted := RunOnce(lines, nil)
	if opted == 0 {
		t.Fatalf("expected the first pass to fire at least one rule")
	}
	second, opted2 := RunOnce(first, nil)
	if opted2 != 0 {
		t.Fatalf("expected the second pass to be a fixpoint, got opted=%d", opted2)
	}
	final := Run(lines, nil)
	if len(final) != len(second) {
		t.Fatalf("Run did not settle at the same fixpoint as manual passes")
	}
}

func TestCommentLinesNeverReachTheRewriter(t *testing.T) {
	// Comments are stripped by ReadLines before the rewriter ever sees
	// them, so a rule window can't accidentally match across one.
	raw := "sta.b tcc__r1\n; a comment sitting between store and reload\nlda.b tcc__r1\n"
	lines, err := ReadLines(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, l := range lines {
		if strings.HasPrefix(l, ";") {
			t.Fatalf("comment line leaked through ReadLines: %q", l)
		}
	}
	out, opted := RunOnce(lines, nil)
	if opted != 1 {
		t.Fatalf("expected R5 to fire once the comment is gone, got opted=%d out=%v", opted, out)
	}
}
