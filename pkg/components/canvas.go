package components

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// upperHalf draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = "▀"

// Canvas is a small pixel grid rendered with half-block characters, two
// pixels per terminal cell stacked vertically. Pixels hold hex colors; an
// empty string is transparent and shows the canvas background.
type Canvas struct {
	w, h int
	px   []string
}

// NewCanvas returns a transparent canvas of w x h pixels. h is rounded up
// to an even number so every cell has two pixels.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	h += h % 2
	return &Canvas{w: w, h: h, px: make([]string, w*h)}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Set paints one pixel. Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.px[y*c.w+x] = color
}

// At returns the color of one pixel, or "" outside the canvas.
func (c *Canvas) At(x, y int) string {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return ""
	}
	return c.px[y*c.w+x]
}

// Fill paints every pixel whose center satisfies inside.
func (c *Canvas) Fill(color string, inside func(x, y float64) bool) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				c.px[y*c.w+x] = color
			}
		}
	}
}

// Render draws the canvas as c.h/2 lines of c.w cells. Colors are reduced
// to the given profile; on the Ascii profile pixels darker than bg are
// drawn with block glyphs and everything else is blank.
func (c *Canvas) Render(p termenv.Profile, bg string) string {
	lines := make([]string, 0, c.h/2)
	for y := 0; y < c.h; y += 2 {
		var b strings.Builder
		for x := 0; x < c.w; x++ {
			top, bot := c.At(x, y), c.At(x, y+1)
			if top == "" {
				top = bg
			}
			if bot == "" {
				bot = bg
			}
			if p == termenv.Ascii {
				b.WriteString(asciiCell(inked(top, bg), inked(bot, bg)))
				continue
			}
			b.WriteString(termenv.String(upperHalf).
				Foreground(p.Color(top)).
				Background(p.Color(bot)).
				String())
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func asciiCell(top, bot bool) string {
	switch {
	case top && bot:
		return "█"
	case top:
		return upperHalf
	case bot:
		return "▄"
	default:
		return " "
	}
}

// inked reports whether color stands out as ink against bg: a lightness
// gap of more than a third of the scale.
func inked(color, bg string) bool {
	if color == bg {
		return false
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return false
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return true
	}
	lc, _, _ := c.Lab()
	lb, _, _ := b.Lab()
	d := lc - lb
	if d < 0 {
		d = -d
	}
	return d > 0.33
}

// Blend mixes a toward b by t in [0,1] in Lab space and returns a hex
// color. Unparseable inputs return a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	switch {
	case t <= 0:
		return ca.Hex()
	case t >= 1:
		return cb.Hex()
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
