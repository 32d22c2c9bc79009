package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the drawing so strings at the extent edge stay visible
const dbgDrawPadding = 40

// Helper to draw a noding session in the terminal (iTerm only) for
// debugging: the segment strings in green, their vertices in cyan, and the
// hot pixel squares in translucent red. Scale is pixels per coordinate unit.
func dbgDraw(strings []*SegmentString, pixels []HotPixel, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range strings {
		for _, p := range s.Pts {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return // nothing to draw
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, hp := range pixels {
		pminX, pminY, pmaxX, pmaxY := hp.Envelope()
		c.DrawRectangle(pminX, pminY, pmaxX-pminX, pmaxY-pminY)
	}
	c.SetRGBA(1, 0, 0, 0.3)
	c.Fill()

	c.SetLineWidth(2 / scale)
	for _, s := range strings {
		c.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		for _, p := range s.Pts[1:] {
			c.LineTo(p.X, p.Y)
		}
	}
	c.SetRGB(0, 1, 0)
	c.Stroke()

	for _, s := range strings {
		for _, p := range s.Pts {
			c.DrawCircle(p.X, p.Y, 3/scale)
		}
	}
	c.SetRGB(0, 1, 1)
	c.Fill()

	c.SavePNG("/tmp/snapround.png")
	imgcat.CatFile("/tmp/snapround.png", os.Stdout)
}
