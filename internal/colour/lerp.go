package colour

// Lerp interpolates each channel linearly from start to end at position t,
// truncating toward zero. t is clamped to [0, 1] so the result never
// leaves the range spanned by the two endpoints.
func Lerp(start, end RGBA, t float64) RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return RGBA{
		R: lerpChannel(start.R, end.R, t),
		G: lerpChannel(start.G, end.G, t),
		B: lerpChannel(start.B, end.B, t),
		A: lerpChannel(start.A, end.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}

// Gradient returns the colour of row y in a vertical gradient of the given
// height: start + (end - start) * (y / height).
func Gradient(start, end RGBA, y, height int) RGBA {
	if height <= 0 {
		return start
	}
	return Lerp(start, end, float64(y)/float64(height))
}
