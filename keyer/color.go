package keyer

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"github.com/alecthomas/kong"
)

// MaxChannel is the largest accepted channel value. 255 itself is rejected.
const MaxChannel = 254

// RGB is a colour given on the command line as three integer tokens
// (--chromakey 20 100 20). A single token with comma separated channels is
// accepted as well.
type RGB struct {
	R, G, B uint8
	set     bool
}

var _ kong.MapperValue = (*RGB)(nil)

func (c *RGB) Decode(ctx *kong.DecodeContext) error {
	t, err := ctx.Scan.PopValue("color")
	if err != nil {
		return err
	}
	fields := strings.FieldsFunc(fmt.Sprint(t.Value), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for len(fields) < 3 {
		t, err := ctx.Scan.PopValue("color")
		if err != nil {
			return fmt.Errorf("expected R G B channels: %w", err)
		}
		fields = append(fields, fmt.Sprint(t.Value))
	}

	rgb, err := parseChannels(fields)
	if err != nil {
		return err
	}
	*c = rgb
	return nil
}

func parseChannels(fields []string) (RGB, error) {
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("expected 3 color channels, got %d", len(fields))
	}

	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color channel %q: %w", f, err)
		}
		if v < 0 || v > MaxChannel {
			return RGB{}, fmt.Errorf("color channel %d out of range 0..%d", v, MaxChannel)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2], set: true}, nil
}

// IsSet reports whether the colour was given on the command line.
func (c RGB) IsSet() bool {
	return c.set
}

// Color returns the opaque colour.
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func (c RGB) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}
