package pcgrid

import (
	"math"
)

func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

// cellIndex maps coord to floor((coord+offset)/size) and reports whether the
// result lies in [0, n). The float comparison runs before the int conversion
// so huge or non-finite inputs never overflow.
func cellIndex(coord, offset, size float64, n int) (int, bool) {
	if !isFinite(coord) {
		return 0, false
	}
	f := math.Floor((coord + offset) / size)
	if f < 0 || f >= float64(n) {
		return 0, false
	}
	return int(f), true
}

// cellCenter is the coordinate of the middle of cell k on an axis spanning
// [-radius, radius].
func cellCenter(k int, size, radius float64) float64 {
	return (float64(k)+0.5)*size - radius
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
