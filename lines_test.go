package main

import (
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Line
	}{
		{
			name:  "drops_comment_lines",
			input: "; a header comment\n\tlda #0\n",
			want:  []Line{"lda #0"},
		},
		{
			name:  "trims_surrounding_space",
			input: "   sta.b tcc__r1   \n",
			want:  []Line{"sta.b tcc__r1"},
		},
		{
			name:  "keeps_blank_lines",
			input: "lda #0\n\nsta.b tcc__r1\n",
			want:  []Line{"lda #0", "", "sta.b tcc__r1"},
		},
		{
			name:  "keeps_labels",
			input: "loop:\n\tbra loop\n",
			want:  []Line{"loop:", "bra loop"},
		},
		{
			name:  "empty_input",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestReadLinesTooLong(t *testing.T) {
	longLine := strings.Repeat("a", MaxLenLine+1)
	_, err := ReadLines(strings.NewReader(longLine + "\n"))
	if err == nil {
		t.Fatalf("expected an error for an oversized line")
	}
	oe, ok := err.(*OptError)
	if !ok {
		t.Fatalf("expected *OptError, got %T", err)
	}
	if oe.Kind != ErrInputFormat {
		t.Errorf("got kind %v, want ErrInputFormat", oe.Kind)
	}
}
