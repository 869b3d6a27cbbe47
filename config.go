package fxfont

import (
	"fmt"
	"strconv"
)

// GridConfig holds the grid.* parameters. Zero width or height means unset.
type GridConfig struct {
	Width   int
	Height  int
	Padding int
	Border  int
	Size    string // "WxH", overrides Width and Height
}

// AreaConfig holds the area.* parameters. A nil width or height extends
// the area to the edge of the image; explicit values are kept as given.
type AreaConfig struct {
	X      int
	Y      int
	Width  *int
	Height *int
	Size   string // "WxH", overrides Width and Height
}

// Config holds the parameters of one conversion.
type Config struct {
	// Name is the identifier of the font object in the generated stub.
	Name    string
	Charset string
	Grid    GridConfig
	Area    AreaConfig

	Proportional bool
	// Flags is a comma-separated subset of bold, italic, serif, mono.
	Flags string

	// LineHeight defaults to the grid cell height, CharSpacing to 1 and
	// LineDistance to LineHeight+1.
	LineHeight   *int
	CharSpacing  *int
	LineDistance *int

	// EncodeAllCells encodes every cell of the grid instead of stopping at
	// the glyph count of the charset. Cells past the glyph count then
	// appear in the glyph data, and in the width table of a proportional
	// font.
	EncodeAllCells bool
}

// DefaultName is used for the font object when Config.Name is empty.
const DefaultName = "font"

// Set assigns the parameter named key, as written on the command line
// (for example "grid.size" or "char-spacing").
func (c *Config) Set(key, value string) error {
	switch key {
	case "name":
		c.Name = value
	case "charset":
		c.Charset = value
	case "flags":
		c.Flags = value
	case "grid.size":
		c.Grid.Size = value
	case "area.size":
		c.Area.Size = value
	case "proportional":
		return setBool(&c.Proportional, key, value)
	case "encode-all-cells":
		return setBool(&c.EncodeAllCells, key, value)
	case "height":
		return setOptional(&c.LineHeight, key, value)
	case "char-spacing":
		return setOptional(&c.CharSpacing, key, value)
	case "line-distance":
		return setOptional(&c.LineDistance, key, value)
	case "area.width":
		return setOptional(&c.Area.Width, key, value)
	case "area.height":
		return setOptional(&c.Area.Height, key, value)
	default:
		if dst := c.intParam(key); dst != nil {
			return setInt(dst, key, value)
		}
		return fmt.Errorf("%w '%s'", ErrUnknownParam, key)
	}
	return nil
}

func (c *Config) intParam(key string) *int {
	switch key {
	case "grid.width":
		return &c.Grid.Width
	case "grid.height":
		return &c.Grid.Height
	case "grid.padding":
		return &c.Grid.Padding
	case "grid.border":
		return &c.Grid.Border
	case "area.x":
		return &c.Area.X
	case "area.y":
		return &c.Area.Y
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s:%s", ErrInvalidParam, key, value)
	}
	*dst = v
	return nil
}

func setOptional(dst **int, key, value string) error {
	var v int
	if err := setInt(&v, key, value); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func setBool(dst *bool, key, value string) error {
	switch value {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		return fmt.Errorf("%w: %s:%s", ErrInvalidParam, key, value)
	}
	return nil
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
