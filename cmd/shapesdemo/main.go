// Command shapesdemo renders a morph between two generated RoundedPolygons
// to an SVG file, as an external-boundary example: it consumes Morph's
// cubics through a plain callback (ForEachCubic) rather than any rendering
// API, the way an external caller is expected to (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gogpu/shapes"
)

func main() {
	var (
		sides     = flag.Int("sides", 6, "number of star points / polygon sides")
		outerR    = flag.Float64("outer-radius", 180, "outer radius")
		innerR    = flag.Float64("inner-radius", 90, "inner radius (star only)")
		rounding  = flag.Float64("rounding", 16, "corner rounding radius")
		smoothing = flag.Float64("smoothing", 0.2, "corner rounding smoothing, in [0,1]")
		progress  = flag.Float64("progress", 0.5, "morph progress, in [0,1]")
		size      = flag.Float64("size", 512, "output image size in pixels")
		output    = flag.String("output", "morph.svg", "output SVG file")
	)
	flag.Parse()

	cx, cy := *size/2, *size/2
	start := shapes.FromNumVertices(*sides, *outerR, cx, cy, shapes.Unrounded, nil)
	end := shapes.Star(*sides, *outerR, *innerR, shapes.NewCornerRounding(*rounding, *smoothing), shapes.NewCornerRounding(*rounding, *smoothing), nil, cx, cy)

	morph := shapes.NewMorph(start, end)

	var path strings.Builder
	first := true
	var scratch shapes.Cubic
	morph.ForEachCubic(*progress, &scratch, func(c shapes.Cubic) {
		if first {
			fmt.Fprintf(&path, "M %.2f,%.2f ", c.Anchor0X(), c.Anchor0Y())
			first = false
		}
		fmt.Fprintf(&path, "C %.2f,%.2f %.2f,%.2f %.2f,%.2f ",
			c.Control0X(), c.Control0Y(), c.Control1X(), c.Control1Y(), c.Anchor1X(), c.Anchor1Y())
	})
	path.WriteString("Z")

	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
  <path d="%s" fill="#3b82f6" stroke="#1e3a8a" stroke-width="2"/>
</svg>
`, *size, *size, *size, *size, path.String())

	if err := os.WriteFile(*output, []byte(svg), 0o644); err != nil {
		log.Fatalf("shapesdemo: failed to write %s: %v", *output, err)
	}
	log.Printf("shapesdemo: wrote %s (progress=%.2f)\n", *output, *progress)
}
