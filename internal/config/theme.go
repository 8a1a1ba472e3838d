package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
)

// Theme holds the demo's display colors.
type Theme struct {
	Text      colorful.Color
	Selection colorful.Color
	Caret     colorful.Color
	Gap       colorful.Color
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return Theme{
		Text:      mustHex("#d8dee9"),
		Selection: mustHex("#434c5e"),
		Caret:     mustHex("#88c0d0"),
		Gap:       mustHex("#2e3440"),
	}
}

// LoadTheme reads a theme from a JSON file. Unknown or missing keys keep
// their default values; a missing file is not an error.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return theme, nil
		}
		return theme, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return theme, fmt.Errorf("theme file %s: invalid JSON", path)
	}
	root := gjson.ParseBytes(data)
	applyColor(root, "text", &theme.Text)
	applyColor(root, "selection", &theme.Selection)
	applyColor(root, "caret", &theme.Caret)
	applyColor(root, "gap", &theme.Gap)
	return theme, nil
}

// applyColor overwrites dst with the named hex color, if present and valid.
func applyColor(root gjson.Result, key string, dst *colorful.Color) {
	val := root.Get(key)
	if !val.Exists() {
		return
	}
	c, err := colorful.Hex(val.String())
	if err != nil {
		return
	}
	*dst = c
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
