package interact

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme supplies the fallback visual parameters a widget uses when its
// configuration leaves them unset. It is read-only to the core.
type Theme struct {
	ShapeColor Color
	FrameColor Color
	LabelColor Color
	FrameWidth float64

	FontSizeSmall  float64
	FontSizeMedium float64
	FontSizeLarge  float64
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	return &Theme{
		ShapeColor:     RGB(0.45, 0.45, 0.45),
		FrameColor:     RGB(0.2, 0.2, 0.2),
		LabelColor:     RGB(0.9, 0.9, 0.9),
		FrameWidth:     1.0,
		FontSizeSmall:  12.0,
		FontSizeMedium: 18.0,
		FontSizeLarge:  24.0,
	}
}

// themeFile is the TOML schema for theme overrides. Absent fields keep
// their defaults; colors are hex strings.
type themeFile struct {
	ShapeColor     string   `toml:"shape_color"`
	FrameColor     string   `toml:"frame_color"`
	LabelColor     string   `toml:"label_color"`
	FrameWidth     *float64 `toml:"frame_width"`
	FontSizeSmall  *float64 `toml:"font_size_small"`
	FontSizeMedium *float64 `toml:"font_size_medium"`
	FontSizeLarge  *float64 `toml:"font_size_large"`
}

// LoadTheme decodes TOML theme data, overlaying it onto the default theme.
func LoadTheme(data []byte) (*Theme, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	t := DefaultTheme()
	if err := overlayColor(&t.ShapeColor, tf.ShapeColor); err != nil {
		return nil, err
	}
	if err := overlayColor(&t.FrameColor, tf.FrameColor); err != nil {
		return nil, err
	}
	if err := overlayColor(&t.LabelColor, tf.LabelColor); err != nil {
		return nil, err
	}
	if tf.FrameWidth != nil {
		t.FrameWidth = *tf.FrameWidth
	}
	if tf.FontSizeSmall != nil {
		t.FontSizeSmall = *tf.FontSizeSmall
	}
	if tf.FontSizeMedium != nil {
		t.FontSizeMedium = *tf.FontSizeMedium
	}
	if tf.FontSizeLarge != nil {
		t.FontSizeLarge = *tf.FontSizeLarge
	}
	return t, nil
}

// LoadThemeFromFile loads a TOML theme file.
func LoadThemeFromFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return LoadTheme(data)
}

// colorOr resolves an optional widget color against a theme fallback.
func colorOr(override *Color, fallback Color) Color {
	if override != nil {
		return *override
	}
	return fallback
}

// floatOr resolves an optional widget value against a theme fallback.
func floatOr(override *float64, fallback float64) float64 {
	if override != nil {
		return *override
	}
	return fallback
}

func overlayColor(dst *Color, hex string) error {
	if hex == "" {
		return nil
	}
	c, err := HexColor(hex)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}
