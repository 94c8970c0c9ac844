package colour

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/rivo/uniseg"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

func ansiSequence(prefix string, c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", prefix,
		safecast.MustConvert[uint8](c.R),
		safecast.MustConvert[uint8](c.G),
		safecast.MustConvert[uint8](c.B),
		ansiSuffix)
}

// ColourPreview returns a solid true-colour block, width cells wide, for a colour.
func ColourPreview(text string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	rgb, err := parseRGB(text)
	if err != nil {
		return "", err
	}
	return ansiSequence(ansiBgPrefix, rgb) + strings.Repeat(" ", width) + ansiReset, nil
}

// ColourPreviewWithText returns a colour block with label centred on it in a readable text colour.
func ColourPreviewWithText(text, label string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	bg, err := parseRGB(text)
	if err != nil {
		return "", err
	}
	fgText, err := ReadableColor(text, ReadableOptions{})
	if err != nil {
		return "", err
	}
	fg, err := parseRGB(fgText)
	if err != nil {
		return "", err
	}

	display, used := fitLabel(label, width)
	if used < width {
		padding := (width - used) / 2
		display = strings.Repeat(" ", padding) + display + strings.Repeat(" ", width-used-padding)
	}

	return ansiSequence(ansiBgPrefix, bg) + ansiSequence(ansiFgPrefix, fg) + display + ansiReset, nil
}

// fitLabel cuts label to at most width terminal cells on grapheme boundaries
// and returns the cut label with its width.
func fitLabel(label string, width int) (string, int) {
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(label)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String(), used
}

// ColourString returns text drawn in the given colour.
func ColourString(colour, text string) (string, error) {
	rgb, err := parseRGB(colour)
	if err != nil {
		return "", err
	}
	return ansiSequence(ansiFgPrefix, rgb) + text + ansiReset, nil
}
