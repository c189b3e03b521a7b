package mesh

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
)

func TestEncodeUnweighted(t *testing.T) {
	s := Spec{Counts: [3]int{2, 1, 1}}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := "2\n" +
		"0.0000000000 0.0000000000 0.0000000000\n" +
		"0.5000000000 0.0000000000 0.0000000000\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode output:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeWeighted(t *testing.T) {
	s := Spec{Counts: [3]int{1, 1, 1}, Weighted: true}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := "1\n0.0000000000 0.0000000000 0.0000000000 1.0000000000\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode output:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeLineCountMatchesHeader(t *testing.T) {
	s := Spec{Counts: [3]int{4, 3, 2}, Weighted: true}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	if !scanner.Scan() {
		t.Fatal("missing count line")
	}
	if scanner.Text() != "24" {
		t.Errorf("count line = %q, want %q", scanner.Text(), "24")
	}

	lines := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			t.Errorf("line %d has %d fields, want 4", lines+1, len(fields))
		}
		for _, f := range fields {
			if len(f) != 12 {
				t.Errorf("field %q is %d chars, want 12", f, len(f))
			}
		}
		lines++
	}
	if lines != 24 {
		t.Errorf("emitted %d coordinate lines, want 24", lines)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	s := Spec{Counts: [3]int{3, 2, 4}, Weighted: true}

	var a, b bytes.Buffer
	if err := s.Encode(&a); err != nil {
		t.Fatalf("first Encode failed: %v", err)
	}
	if err := s.Encode(&b); err != nil {
		t.Fatalf("second Encode failed: %v", err)
	}

	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical specs must produce byte-identical output")
	}
}

func TestEncodeInvalidSpecEmitsNothing(t *testing.T) {
	s := Spec{Counts: [3]int{0, 1, 1}}

	var buf bytes.Buffer
	err := s.Encode(&buf)
	if err == nil {
		t.Fatal("expected error for zero axis count")
	}
	if !kerrors.IsInvalidInput(err) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("invalid spec produced %d bytes of output", buf.Len())
	}
}
