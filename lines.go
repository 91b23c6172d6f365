package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLines produces the ordered line sequence T:
// for each line of r, the trailing newline is removed; a line starting
// with ';' is dropped entirely; otherwise the line is trimmed of
// surrounding ASCII whitespace and kept, including when the trimmed
// result is empty. No line may exceed MaxLenLine bytes.
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	// One byte beyond MaxLenLine leaves room for the terminating newline.
	scanner.Buffer(make([]byte, 0, MaxLenLine+1), MaxLenLine+1)

	var lines []Line
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if strings.HasPrefix(raw, ";") {
			continue
		}
		lines = append(lines, strings.TrimSpace(raw))
	}
	if err := scanner.Err(); err != nil {
		return nil, &OptError{
			Kind: ErrInputFormat,
			Msg:  fmt.Sprintf("line %d: %v", lineNo+1, err),
		}
	}
	return lines, nil
}
