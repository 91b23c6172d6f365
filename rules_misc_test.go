package main

import "testing"

func TestR32CollapseRepSep(t *testing.T) {
	lines := []Line{"rep #$20", "sep #$20", "rts"}
	out, opted := runLines(t, lines, nil)
	if opted != 1 {
		t.Fatalf("expected R32 to fire, got opted=%d out=%v", opted, out)
	}
	assertLines(t, out, []Line{"rts"})
}

func TestR33FuseImmediatePushes(t *testing.T) {
	lines := []Line{
		"sep #$20",
		"lda #$12",
		"pha",
		"lda #$34",
		"pha",
	}
	out, opted := runLines(t, lines, nil)
	if opted != 1 {
		t.Fatalf("expected R33 to fire, got opted=%d out=%v", opted, out)
	}
	assertLines(t, out, []Line{"pea.w ($12 * 256 + $34)", "sep #$20"})
}

func TestR34AdcIncFold(t *testing.T) {
	lines := []Line{
		"adc #5",
		"sta.b tcc__r1",
		"inc.b tcc__r1",
		"inc.b tcc__r1",
	}
	out, opted := runLines(t, lines, nil)
	if opted != 1 {
		t.Fatalf("expected R34 to fire, got opted=%d out=%v", opted, out)
	}
	assertLines(t, out, []Line{"adc #5 + 2", "sta.b tcc__r1"})
}

func TestR35LongToBankRelative(t *testing.T) {
	lines := []Line{
		`.RAMSECTION ".bss" BANK $7e SLOT 2`,
		"counter DSB 2",
		".ENDS",
		"lda.l counter ,x",
	}
	bss := CollectBSS(lines)
	out, opted := runLines(t, lines, bss)
	if opted != 1 {
		t.Fatalf("expected R35 to fire, got opted=%d out=%v", opted, out)
	}
	if out[len(out)-1] != "lda.w counter ,x" {
		t.Errorf("expected narrowed access, got %q", out[len(out)-1])
	}
}

func TestR35LeavesUnknownSymbols(t *testing.T) {
	lines := []Line{"lda.l unknown_symbol ,x"}
	out, opted := runLines(t, lines, nil)
	if opted != 0 {
		t.Fatalf("expected R35 not to fire for an unknown symbol, got opted=%d out=%v", opted, out)
	}
}

func TestR36DeadJumpToNextLabel(t *testing.T) {
	lines := []Line{
		"jmp.w L_next",
		"L_next:",
		"rts",
	}
	out, opted := runLines(t, lines, nil)
	if opted != 1 {
		t.Fatalf("expected R36 to fire, got opted=%d out=%v", opted, out)
	}
	assertLines(t, out, []Line{"L_next:", "rts"})
}

func TestR37JmpToBraWithinRange(t *testing.T) {
	lines := []Line{
		"L_target:",
		"clc",
		"jmp.w L_target",
	}
	out, opted := runLines(t, lines, nil)
	if opted != 1 {
		t.Fatalf("expected R37 to fire, got opted=%d out=%v", opted, out)
	}
	assertLines(t, out, []Line{"L_target:", "clc", "bra L_target"})
}

func TestR37LeavesFarJumpAlone(t *testing.T) {
	lines := make([]Line, 0, 40)
	lines = append(lines, "L_target:")
	for i := 0; i < 40; i++ {
		lines = append(lines, "clc")
	}
	lines = append(lines, "jmp.w L_target")

	out, opted := runLines(t, lines, nil)
	if opted != 0 {
		t.Fatalf("expected R37 not to fire outside the window, got opted=%d", opted)
	}
	if out[len(out)-1] != "jmp.w L_target" {
		t.Errorf("expected the long jump to remain, got %q", out[len(out)-1])
	}
}
