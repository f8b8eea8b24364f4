package internal

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/minbox/dbg"
)

// Padding around the shape so the box outline is never clipped
const drawPadding = 40

// Everything that can be put on one picture. Candidates is optional; when set,
// every tried rectangle is outlined and labeled with its debug name.
type Scene struct {
	Points     []Point
	Hull       Hull
	Box        OrientedBox
	Candidates []Candidate
}

// Render the scene with y pointing up, scale pixels per unit.
func Draw(scene Scene, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range scene.Points {
		extend(p)
	}
	for _, p := range scene.Box.Corners {
		extend(p)
	}
	for i := range scene.Candidates {
		for _, p := range scene.Candidates[i].corners() {
			extend(p)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for i := range scene.Candidates {
		candidate := &scene.Candidates[i]
		corners := candidate.corners()
		tracePolygon(c, corners[:])
		c.SetRGBA(1, 1, 0, 0.4)
		c.Stroke()
		drawLabel(c, dbg.Name(candidate), corners[2].X, corners[2].Y)
	}

	if len(scene.Hull) > 1 {
		tracePolygon(c, scene.Hull)
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	if scene.Box.Area > 0 {
		tracePolygon(c, scene.Box.Corners[:])
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(2)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range scene.Points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	drawLabel(c, fmt.Sprintf("%s° %s", FormatDecimal(scene.Box.Angle), FormatDecimal(scene.Box.Area)), minX, minY)
	return c
}

func tracePolygon(c *gg.Context, points []Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Text has to be drawn in device space, or the flip above mirrors it.
func drawLabel(c *gg.Context, text string, x, y float64) {
	x, y = c.TransformPoint(x, y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(text, x, y, 0, 1.5)
	c.Pop()
}

func (c *Candidate) corners() [4]Point {
	return c.box().Corners
}
