package charts

import (
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

var (
	colorText  = drawing.ColorFromHex("333333")
	colorAxis  = drawing.ColorFromHex("888888")
	colorGrid  = drawing.ColorFromHex("e5e5e5")
	colorBack  = drawing.ColorWhite
	colorFrame = drawing.ColorFromHex("444444")

	// palette assigns one color per category in first-appearance order.
	palette = []drawing.Color{
		drawing.ColorFromHex("636efa"),
		drawing.ColorFromHex("ef553b"),
		drawing.ColorFromHex("00cc96"),
		drawing.ColorFromHex("ab63fa"),
		drawing.ColorFromHex("ffa15a"),
		drawing.ColorFromHex("19d3f3"),
		drawing.ColorFromHex("ff6692"),
		drawing.ColorFromHex("b6e880"),
		drawing.ColorFromHex("ff97ff"),
		drawing.ColorFromHex("fecb52"),
	}

	unsafeText = strings.NewReplacer("<", "", ">", "", "&", "", "\"", "")
)

func colorAt(i int) drawing.Color {
	return palette[i%len(palette)]
}

// canvas wraps a go-chart SVG renderer with the few primitives the charts need.
type canvas struct {
	r    chart.Renderer
	base chart.Style
	w, h int
}

func newCanvas(w, h int) (*canvas, error) {
	r, err := chart.SVG(w, h)
	if err != nil {
		return nil, fmt.Errorf("create svg renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load chart font: %w", err)
	}

	c := &canvas{r: r, base: chart.Style{Font: font}, w: w, h: h}
	c.rect(chart.Box{Top: 0, Left: 0, Right: w, Bottom: h}, colorBack, colorBack)
	return c, nil
}

func (c *canvas) rect(b chart.Box, fill, stroke drawing.Color) {
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(1)
	c.r.MoveTo(b.Left, b.Top)
	c.r.LineTo(b.Right, b.Top)
	c.r.LineTo(b.Right, b.Bottom)
	c.r.LineTo(b.Left, b.Bottom)
	c.r.Close()
	c.r.FillStroke()
	c.r.ResetStyle()
}

func (c *canvas) line(x1, y1, x2, y2 int, col drawing.Color, width float64) {
	c.r.SetStrokeColor(col)
	c.r.SetStrokeWidth(width)
	c.r.MoveTo(x1, y1)
	c.r.LineTo(x2, y2)
	c.r.Stroke()
	c.r.ResetStyle()
}

func (c *canvas) dot(x, y int, radius float64, col drawing.Color) {
	c.r.SetFillColor(col)
	c.r.SetStrokeColor(col.WithAlpha(255))
	c.r.SetStrokeWidth(0.5)
	c.r.Circle(radius, x, y)
	c.r.ResetStyle()
}

func (c *canvas) textStyle(size float64, col drawing.Color) {
	c.r.SetFont(c.base.Font)
	c.r.SetFontSize(size)
	c.r.SetFontColor(col)
}

func (c *canvas) textWidth(s string, size float64) int {
	c.textStyle(size, colorText)
	w := c.r.MeasureText(s).Width()
	c.r.ResetStyle()
	return w
}

// text draws s with its baseline at y, aligned horizontally around x.
func (c *canvas) text(s string, x, y int, size float64, col drawing.Color, a align) {
	s = unsafeText.Replace(s)
	if s == "" {
		return
	}
	switch a {
	case alignCenter:
		x -= c.textWidth(s, size) / 2
	case alignRight:
		x -= c.textWidth(s, size)
	}
	c.textStyle(size, col)
	c.r.Text(s, x, y)
	c.r.ResetStyle()
}

// vtext draws s rotated a quarter turn counterclockwise, centered on y.
func (c *canvas) vtext(s string, x, y int, size float64, col drawing.Color) {
	s = unsafeText.Replace(s)
	w := c.textWidth(s, size)
	c.textStyle(size, col)
	c.r.SetTextRotation(-math.Pi / 2)
	c.r.Text(s, x, y+w/2)
	c.r.ClearTextRotation()
	c.r.ResetStyle()
}

func (c *canvas) title(s string) {
	c.text(s, c.w/2, 26, 15, colorText, alignCenter)
}

// legend lists labels with color swatches starting at (x, y).
func (c *canvas) legend(title string, labels []string, x, y int) {
	c.text(title, x, y, 11, colorText, alignLeft)
	for i, l := range labels {
		ly := y + 18*(i+1)
		c.rect(chart.Box{Top: ly - 9, Left: x, Right: x + 10, Bottom: ly + 1}, colorAt(i), colorAt(i))
		c.text(displayLabel(l), x+16, ly, 11, colorText, alignLeft)
	}
}

func (c *canvas) save(w io.Writer) error {
	return c.r.Save(w)
}

func displayLabel(s string) string {
	if s == "" {
		return "(missing)"
	}
	return s
}

// placeholder writes an empty chart carrying only a title and a message.
func placeholder(w io.Writer, width, height int, title, msg string) error {
	c, err := newCanvas(width, height)
	if err != nil {
		return err
	}
	c.title(title)
	c.text(msg, width/2, height/2, 13, colorAxis, alignCenter)
	return c.save(w)
}
