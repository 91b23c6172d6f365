package main

import "strings"

// startsWith reports whether line has prefix pfx. An empty line never
// matches.
func startsWith(line, pfx string) bool {
	if line == "" {
		return false
	}
	return strings.HasPrefix(line, pfx)
}

// endsWith reports whether line has suffix sfx. Returns false if line is
// shorter than sfx.
func endsWith(line, sfx string) bool {
	if len(line) < len(sfx) {
		return false
	}
	return strings.HasSuffix(line, sfx)
}

// equalsStr reports exact string equality.
func equalsStr(a, b string) bool {
	return a == b
}

// containsStr reports whether line contains sub as a substring.
func containsStr(line, sub string) bool {
	return strings.Contains(line, sub)
}

// changesAccu reports whether line touches the accumulator.
//
// The source implementation this is ported from short-circuits with
// "!startsWith(pha) || !startsWith(sta)", which read literally is always
// true. This follows the evident intent (a conjunction, not a
// disjunction): pha and sta are the two instructions whose third
// character is 'a' without altering the accumulator's value, so both
// must be excluded for changesAccu to report false on them.
func changesAccu(line string) bool {
	if len(line) > 2 {
		if line[2] == 'a' && !startsWith(line, "pha") && !startsWith(line, "sta") {
			return true
		}
	}
	if len(line) == 5 && endsWith(line, " a") {
		return true
	}
	return false
}

// isControl reports whether line is a label, jump, branch, or relative
// branch target.
func isControl(line string) bool {
	if line == "" {
		return false
	}
	if endsWith(line, ":") {
		return true
	}
	switch line[0] {
	case 'j', 'b', '-', '+':
		return true
	}
	return false
}
