// internal/colors/colors.go
//
// Color-name translation for presentation layers.
//
// The engine works on symbols; players in color mode think in the
// six-color palette below. This package maps between the two without
// the engine ever knowing colors exist.
//
// Palette (symbol order): Red Blue Green Yellow Purple Orange → "012345".

package colors

import (
	"fmt"
	"strings"
)

// Ordered lists the palette in symbol order: Ordered[i] maps to the
// symbol '0'+i.
var Ordered = []string{"Red", "Blue", "Green", "Yellow", "Purple", "Orange"}

var (
	colorToSymbol = map[string]rune{}
	symbolToColor = map[rune]string{}
)

func init() {
	for i, name := range Ordered {
		sym := rune('0' + i)
		colorToSymbol[name] = sym
		symbolToColor[sym] = name
	}
}

// Alphabet returns the symbol alphabet backing the palette, suitable
// for building game rules.
func Alphabet() string {
	syms := make([]rune, len(Ordered))
	for i := range Ordered {
		syms[i] = rune('0' + i)
	}
	return string(syms)
}

// Canonical normalizes a color name to palette casing ("red" → "Red").
// Returns an error for names outside the palette.
func Canonical(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n != "" {
		n = strings.ToUpper(n[:1]) + n[1:]
	}
	if _, ok := colorToSymbol[n]; !ok {
		return "", fmt.Errorf("unknown color %q", name)
	}
	return n, nil
}

// ToSymbols converts color names to a symbol code, e.g.
// ["Red","Green","Blue","Yellow"] → "0213". Names are normalized
// case-insensitively; unknown names are rejected.
func ToSymbols(names []string) (string, error) {
	code := make([]rune, 0, len(names))
	for _, name := range names {
		n, err := Canonical(name)
		if err != nil {
			return "", err
		}
		code = append(code, colorToSymbol[n])
	}
	return string(code), nil
}

// ToColors converts a symbol code back to color names.
// Symbols outside the palette are rejected.
func ToColors(code string) ([]string, error) {
	names := make([]string, 0, len(code))
	for _, sym := range code {
		name, ok := symbolToColor[sym]
		if !ok {
			return nil, fmt.Errorf("symbol %q has no color", sym)
		}
		names = append(names, name)
	}
	return names, nil
}
