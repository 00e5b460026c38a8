package tracer

import "math"

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func colorEqual(a, b Color) bool {
	return almostEqual(a.R, b.R) && almostEqual(a.G, b.G) && almostEqual(a.B, b.B)
}
