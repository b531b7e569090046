package validate

import "strconv"

// Normalize pads points with zero-valued synthetic entries until the
// dataset has at least max(minPoints, MinChartPoints) elements. Fewer than
// five vertices produce a visually unstable, degenerate polygon, so the
// five-point floor holds regardless of minPoints.
//
// Existing points are never removed, reordered, or mutated; padding
// entries "Point {n}" (n = position, 1-based) are appended at the end.
// When no padding is needed the input slice is returned as-is.
//
// Complexity: O(n) time, O(n) memory.
func Normalize(points []DataPoint, minPoints int) []DataPoint {
	if minPoints < MinChartPoints {
		minPoints = MinChartPoints
	}
	if len(points) >= minPoints {
		return points
	}

	out := make([]DataPoint, len(points), minPoints)
	copy(out, points)
	for n := len(points) + 1; n <= minPoints; n++ {
		out = append(out, DataPoint{Name: paddingNamePrefix + strconv.Itoa(n), Value: 0})
	}

	return out
}
