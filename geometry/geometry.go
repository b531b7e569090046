package geometry

import "math"

// ComputeDimensions derives the chart frame from the drawing surface size.
// The drawable radius is half the short side minus padding (label room);
// spokeCount is floored at MinSpokes so the polygon stays stable.
//
// Pass DefaultPadding unless the configuration overrides it.
//
// Complexity: O(1).
func ComputeDimensions(width, height float64, spokeCount int, padding float64) Dimensions {
	if spokeCount < MinSpokes {
		spokeCount = MinSpokes
	}

	return Dimensions{
		CenterX:    width / 2,
		CenterY:    height / 2,
		Radius:     math.Min(width, height)/2 - padding,
		SpokeCount: spokeCount,
		AngleStep:  2 * math.Pi / float64(spokeCount),
	}
}

// spokeAngle returns the angle of spoke i: StartAngle plus i steps clockwise.
func spokeAngle(d Dimensions, i int) float64 {
	return StartAngle + float64(i)*d.AngleStep
}

// GridPolygons returns one vertex list per concentric grid level, ordered
// innermost (level 1) to outermost (level == levels). Level k sits at
// radius·k/levels; vertex i of every level sits on spoke i.
//
// Complexity: O(levels × spokes).
func GridPolygons(d Dimensions, levels int) [][]Point {
	polygons := make([][]Point, 0, levels)
	for level := 1; level <= levels; level++ {
		levelRadius := d.Radius * float64(level) / float64(levels)
		vertices := make([]Point, d.SpokeCount)
		for i := 0; i < d.SpokeCount; i++ {
			angle := spokeAngle(d, i)
			vertices[i] = Point{
				X: d.CenterX + levelRadius*math.Cos(angle),
				Y: d.CenterY + levelRadius*math.Sin(angle),
			}
		}
		polygons = append(polygons, vertices)
	}

	return polygons
}

// Spokes returns one radial line per spoke, from the chart center to the
// outermost grid-level vertex on that spoke.
//
// Complexity: O(spokes).
func Spokes(d Dimensions) []SpokeLine {
	lines := make([]SpokeLine, d.SpokeCount)
	for i := 0; i < d.SpokeCount; i++ {
		angle := spokeAngle(d, i)
		lines[i] = SpokeLine{
			X1: d.CenterX,
			Y1: d.CenterY,
			X2: d.CenterX + d.Radius*math.Cos(angle),
			Y2: d.CenterY + d.Radius*math.Sin(angle),
		}
	}

	return lines
}
