package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// Notes:
// - Styled output depends on the terminal profile; tests only check that
//   the text survives rendering, not the escape codes.

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteGuidance_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeGuidance(&buf, "What made the tension feel hardest to name?\n\n", false); err != nil {
		t.Fatalf("writeGuidance() unexpected error: %v", err)
	}

	want := "### AI Companion's Guidance:\n\nWhat made the tension feel hardest to name?\n"
	if buf.String() != want {
		t.Errorf("writeGuidance() = %q, want %q", buf.String(), want)
	}
}

func TestWriteGuidance_Styled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeGuidance(&buf, "Name one small win.", true); err != nil {
		t.Fatalf("writeGuidance() unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"AI Companion", "Name one small win."} {
		if !strings.Contains(out, want) {
			t.Errorf("styled output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGuidance_WriteError(t *testing.T) {
	t.Parallel()

	if err := writeGuidance(failingWriter{}, "x", false); err == nil {
		t.Error("writeGuidance(failing writer) = nil, want error")
	}
}
