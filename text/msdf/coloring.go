package msdf

import "math"

// colorCycle is the order initial colors are drawn from.
var colorCycle = [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}

// EdgeColoringSimple assigns edge colors so that every corner sees two
// edges that share at most one channel. A corner is a junction where the
// direction changes by more than angleThreshold radians (or turns back on
// itself). The seed picks among equally valid colorings; 0 is the default.
//
// Smooth contours get a single color. Contours with one corner ("teardrop")
// are split into three color runs. Otherwise the color switches at every
// corner, avoiding the first color on the final run.
func EdgeColoringSimple(shape *Shape, angleThreshold float64, seed uint64) {
	crossThreshold := math.Sin(angleThreshold)
	color := initColor(&seed)

	var corners []int
	for _, contour := range shape.Contours {
		if len(contour.Edges) == 0 {
			continue
		}

		corners = findCorners(contour, crossThreshold, corners[:0])

		switch len(corners) {
		case 0:
			color = switchColor(color, &seed)
			for i := range contour.Edges {
				contour.Edges[i].Color = color
			}

		case 1:
			var colors [3]EdgeColor
			color = switchColor(color, &seed)
			colors[0] = color
			colors[1] = ColorWhite
			color = switchColor(color, &seed)
			colors[2] = color
			colorTeardrop(contour, corners[0], colors)

		default:
			m := len(contour.Edges)
			start := corners[0]
			spline := 0
			color = switchColor(color, &seed)
			initial := color
			for i := 0; i < m; i++ {
				index := (start + i) % m
				if spline+1 < len(corners) && corners[spline+1] == index {
					spline++
					var banned EdgeColor
					if spline == len(corners)-1 {
						banned = initial
					}
					color = switchColorBanned(color, &seed, banned)
				}
				contour.Edges[index].Color = color
			}
		}
	}
}

// findCorners appends the indices of edges that start at a corner.
func findCorners(contour *Contour, crossThreshold float64, corners []int) []int {
	prev := contour.Edges[len(contour.Edges)-1].DirectionAt(1)
	for i := range contour.Edges {
		e := &contour.Edges[i]
		if isCorner(prev.Normalized(), e.DirectionAt(0).Normalized(), crossThreshold) {
			corners = append(corners, i)
		}
		prev = e.DirectionAt(1)
	}
	return corners
}

func isCorner(a, b Point, crossThreshold float64) bool {
	return a.Dot(b) <= 0 || math.Abs(a.Cross(b)) > crossThreshold
}

// colorTeardrop colors a contour with a single corner. Contours with fewer
// than three edges are split so each color gets its own edges.
func colorTeardrop(contour *Contour, corner int, colors [3]EdgeColor) {
	m := len(contour.Edges)
	if m >= 3 {
		for i := 0; i < m; i++ {
			contour.Edges[(corner+i)%m].Color = colors[1+symmetricalTrichotomy(i, m)]
		}
		return
	}

	var parts []Edge
	switch m {
	case 1:
		thirds := contour.Edges[0].SplitInThirds()
		for i := range thirds {
			thirds[i].Color = colors[i]
		}
		parts = thirds[:]
	case 2:
		first := contour.Edges[corner].SplitInThirds()
		second := contour.Edges[1-corner].SplitInThirds()
		parts = append(first[:], second[:]...)
		for i := range parts {
			parts[i].Color = colors[i/2]
		}
	}
	contour.Edges = parts
}

// symmetricalTrichotomy maps position in [0, n) onto -1, 0 or 1 so that
// the three runs are as even as possible and mirror each other.
func symmetricalTrichotomy(position, n int) int {
	return int(3+2.875*float64(position)/float64(n-1)-1.4375+0.5) - 3
}

func initColor(seed *uint64) EdgeColor {
	c := colorCycle[*seed%3]
	*seed /= 3
	return c
}

// switchColor rotates a two-channel color to one of the other two,
// driven by the low bit of seed.
func switchColor(color EdgeColor, seed *uint64) EdgeColor {
	shifted := int(color) << (1 + (*seed & 1))
	*seed >>= 1
	return EdgeColor((shifted | shifted>>3) & int(ColorWhite))
}

// switchColorBanned is switchColor that never returns a color sharing two
// channels with banned.
func switchColorBanned(color EdgeColor, seed *uint64, banned EdgeColor) EdgeColor {
	combined := color & banned
	if combined == ColorRed || combined == ColorGreen || combined == ColorBlue {
		return combined ^ ColorWhite
	}
	return switchColor(color, seed)
}
