package colour

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/image/colornames"
)

// namedHex maps the CSS named colours to their hex form. Built once, read-only.
var namedHex = func() map[string]Hex {
	m := make(map[string]Hex, len(colornames.Map))
	for name, c := range colornames.Map {
		m[name] = Hex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	return m
}()

// LookupName returns the hex value of a CSS named colour, ignoring case.
func LookupName(name string) (Hex, bool) {
	h, ok := namedHex[strings.ToLower(strings.TrimSpace(name))]
	return h, ok
}

// ColourNames returns the known colour names in alphabetical order.
func ColourNames() []string {
	names := lo.Keys(namedHex)
	slices.Sort(names)
	return names
}
