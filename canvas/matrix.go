// Package canvas rasterises board shapes onto a grid of terminal cells.
package canvas

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"pcbdraw/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Cell is a character position. Origin (0,0) is top-left, Y grows downward.
type Cell struct {
	X, Y int
}

// Ink tags what drew a cell so a front end can color it.
type Ink struct {
	Layer   core.Layer
	Preview bool
}

// MatrixCanvas is a rune matrix with line and text primitives.
//
// MatrixCanvas is NOT thread-safe. The terminal redraws it from its event
// loop only.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells
type MatrixCanvas struct {
	matrix [][]rune
	ink    [][]Ink
	pen    Ink
	width  int
	height int
	merger *CharacterMerger
}

// NewMatrixCanvas creates a new canvas with the specified dimensions.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	matrix := make([][]rune, height)
	ink := make([][]Ink, height)
	for y := 0; y < height; y++ {
		matrix[y] = make([]rune, width)
		ink[y] = make([]Ink, width)
		for x := 0; x < width; x++ {
			matrix[y][x] = ' '
		}
	}

	return &MatrixCanvas{
		matrix: matrix,
		ink:    ink,
		width:  width,
		height: height,
		merger: NewCharacterMerger(),
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Matrix returns direct access to the underlying rune matrix.
func (c *MatrixCanvas) Matrix() [][]rune {
	return c.matrix
}

// SetInk selects the tag stored with every following glyph.
func (c *MatrixCanvas) SetInk(ink Ink) {
	c.pen = ink
}

// InkAt returns the tag of the glyph at p.
func (c *MatrixCanvas) InkAt(p Cell) Ink {
	if !c.contains(p) {
		return Ink{}
	}
	return c.ink[p.Y][p.X]
}

// Get returns the character at the given position.
// Returns ' ' (space) if position is out of bounds.
func (c *MatrixCanvas) Get(p Cell) rune {
	if !c.contains(p) {
		return ' '
	}
	return c.matrix[p.Y][p.X]
}

// Set places a character at the given position, merging it with line
// glyphs already there.
func (c *MatrixCanvas) Set(p Cell, char rune) error {
	if !c.contains(p) {
		return ErrOutOfBounds
	}
	existing := c.matrix[p.Y][p.X]
	merged := c.merger.Merge(existing, char)
	if merged != existing {
		c.ink[p.Y][p.X] = c.pen
	}
	c.matrix[p.Y][p.X] = merged
	return nil
}

// Clear resets the canvas to all spaces.
func (c *MatrixCanvas) Clear() {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.matrix[y][x] = ' '
			c.ink[y][x] = Ink{}
		}
	}
}

// String returns the canvas as a string with newlines.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r := c.matrix[y][x]
			if r == '\x00' {
				// Wide character continuation
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(r)
			}
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// DrawLine draws a line between two cells using Bresenham's algorithm.
// Cells outside the canvas are skipped.
func (c *MatrixCanvas) DrawLine(p1, p2 Cell, char rune) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	x, y := p1.X, p1.Y

	xInc := 1
	if p1.X > p2.X {
		xInc = -1
	}

	yInc := 1
	if p1.Y > p2.Y {
		yInc = -1
	}

	if dx > dy {
		err := dx / 2
		for x != p2.X {
			c.Set(Cell{x, y}, char)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != p2.Y {
			c.Set(Cell{x, y}, char)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}

	c.Set(p2, char)
}

// DrawText renders text left to right starting at p. Text overwrites line
// glyphs.
func (c *MatrixCanvas) DrawText(p Cell, text string) {
	if p.Y < 0 || p.Y >= c.height {
		return
	}

	x := p.X
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}
		if width == 2 && x >= 0 && x+1 >= c.width {
			break
		}
		if x >= 0 && x < c.width {
			c.matrix[p.Y][x] = r
			c.ink[p.Y][x] = c.pen
			if width == 2 {
				c.matrix[p.Y][x+1] = '\x00'
				c.ink[p.Y][x+1] = c.pen
			}
		}
		x += width
		if x >= c.width {
			break
		}
	}
}

func (c *MatrixCanvas) contains(p Cell) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// LineGlyph picks the character for a line running along (dx, dy).
func LineGlyph(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '·'
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	}
	// Shallow and steep lines read better as straight glyphs.
	ax, ay := abs(dx), abs(dy)
	if ax > 2*ay {
		return '─'
	}
	if ay > 2*ax {
		return '│'
	}
	if (dx > 0) == (dy > 0) {
		return '╲'
	}
	return '╱'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
