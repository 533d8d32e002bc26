package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// guidanceHeading introduces the generated text.
const guidanceHeading = "### AI Companion's Guidance:"

// glamourWordWrap is the column width for terminal rendering.
const glamourWordWrap = 80

// writeGuidance writes the heading and text as markdown.
// When styled is true the markdown is rendered for the terminal with glamour;
// if rendering fails the raw markdown is written instead.
func writeGuidance(w io.Writer, text string, styled bool) error {
	md := guidanceHeading + "\n\n" + strings.TrimRight(text, "\n") + "\n"

	if styled {
		if out, err := renderTerminal(md); err == nil {
			md = out
		}
	}

	if _, err := io.WriteString(w, md); err != nil {
		return fmt.Errorf("write guidance: %w", err)
	}
	return nil
}

// renderTerminal renders md with glamour's auto-detected style.
func renderTerminal(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(glamourWordWrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
