package geoplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	defaultCanvasWidth    = 80
	minCanvasWidth        = 20
	canvasAspect          = 4 // columns per row; terminal cells are tall
	minCanvasHeight       = 10
	borderGlyphCorner     = '+'
	borderGlyphHorizontal = '-'
	borderGlyphVertical   = '|'
)

var canvasTitleStyle = lipgloss.NewStyle().Bold(true)

// Canvas renders a state scatter as a character grid on a terminal. It
// implements Renderer: RenderBaseMap fixes the geographic extent and draws
// the frame, OverlayPoints plots the markers and writes the finished plot.
type Canvas struct {
	out    io.Writer
	width  int
	height int

	region   string
	latRange [2]float64
	lonRange [2]float64
	grid     [][]rune
	marker   [][]bool
}

// NewCanvas creates a Canvas writing to out, sized to the current terminal
// width with a fallback when the width cannot be detected.
func NewCanvas(out io.Writer) *Canvas {
	width := defaultCanvasWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w >= minCanvasWidth {
		width = w
	}
	return NewCanvasSize(out, width, max(width/canvasAspect, minCanvasHeight))
}

// NewCanvasSize creates a Canvas with a fixed character grid size.
func NewCanvasSize(out io.Writer, width, height int) *Canvas {
	if width < minCanvasWidth {
		width = minCanvasWidth
	}
	if height < minCanvasHeight {
		height = minCanvasHeight
	}
	return &Canvas{out: out, width: width, height: height}
}

// RenderBaseMap fixes the extent for subsequent overlays and draws the frame.
// Nothing is written until OverlayPoints completes the plot.
func (c *Canvas) RenderBaseMap(region string, latRange, lonRange [2]float64) error {
	if latRange[1] < latRange[0] || lonRange[1] < lonRange[0] {
		return fmt.Errorf("invalid extent: lat %v lon %v", latRange, lonRange)
	}

	c.region = region
	c.latRange = latRange
	c.lonRange = lonRange

	c.grid = make([][]rune, c.height)
	c.marker = make([][]bool, c.height)
	for y := range c.grid {
		c.grid[y] = make([]rune, c.width)
		c.marker[y] = make([]bool, c.width)
		for x := range c.grid[y] {
			c.grid[y][x] = ' '
		}
	}

	for x := 0; x < c.width; x++ {
		c.grid[0][x] = borderGlyphHorizontal
		c.grid[c.height-1][x] = borderGlyphHorizontal
	}
	for y := 0; y < c.height; y++ {
		c.grid[y][0] = borderGlyphVertical
		c.grid[y][c.width-1] = borderGlyphVertical
	}
	c.grid[0][0] = borderGlyphCorner
	c.grid[0][c.width-1] = borderGlyphCorner
	c.grid[c.height-1][0] = borderGlyphCorner
	c.grid[c.height-1][c.width-1] = borderGlyphCorner

	return nil
}

// OverlayPoints plots the non-missing points inside the frame and writes the
// finished plot to the canvas output.
func (c *Canvas) OverlayPoints(points []Point, style MarkerStyle) error {
	if c.grid == nil {
		return errors.New("no base map rendered")
	}

	glyph := '.'
	if style.Glyph != "" {
		glyph = []rune(style.Glyph)[0]
	}

	for _, p := range points {
		if p.Missing() {
			continue
		}
		x := c.scale(*p.Lon, c.lonRange, c.width)
		y := c.height - 1 - c.scale(*p.Lat, c.latRange, c.height)
		c.grid[y][x] = glyph
		c.marker[y][x] = true
	}

	return c.flush(style)
}

// scale maps a coordinate onto an interior cell index, leaving the border
// cells free. A degenerate range collapses to the midpoint.
func (c *Canvas) scale(v float64, rng [2]float64, cells int) int {
	interior := cells - 2
	span := rng[1] - rng[0]
	if span == 0 {
		return 1 + interior/2
	}
	idx := int(math.Round((v - rng[0]) / span * float64(interior-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > interior-1 {
		idx = interior - 1
	}
	return 1 + idx
}

func (c *Canvas) flush(style MarkerStyle) error {
	markerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color))

	var b strings.Builder
	title := fmt.Sprintf("%s  lat [%.4f, %.4f]  lon [%.4f, %.4f]",
		c.region, c.latRange[0], c.latRange[1], c.lonRange[0], c.lonRange[1])
	b.WriteString(canvasTitleStyle.Render(title))
	b.WriteByte('\n')

	for y := range c.grid {
		for x, r := range c.grid[y] {
			if c.marker[y][x] {
				b.WriteString(markerStyle.Render(string(r)))
				continue
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}
