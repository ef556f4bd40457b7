package reputation

import "math"

// Seeded returns a pseudo-random float in [0,1) as a pure function of
// its seed. Same seed, same output, no hidden state. Every piece of
// variation in the scoring engine routes through this so a score
// computation is bit-for-bit reproducible given the same inputs.
func Seeded(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// HashString maps a string to a non-negative seed. Order-sensitive,
// collision-tolerant, not cryptographic.
func HashString(s string) int64 {
	var h int64
	for _, r := range s {
		h = h*31 + int64(r)
	}
	return h & math.MaxInt64
}

// Pick deterministically selects an element from list. Returns the zero
// value for an empty list.
func Pick[T any](list []T, seed int64) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[int(Seeded(seed)*float64(len(list)))]
}

// RandInt returns a deterministic integer in [min, max].
func RandInt(min, max int, seed int64) int {
	if max <= min {
		return min
	}
	return min + int(Seeded(seed)*float64(max-min+1))
}

// Clamp rounds v to the nearest integer and bounds it to [min, max].
func Clamp(v float64, min, max int) int {
	n := int(math.Round(v))
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// noise returns a symmetric deterministic noise term in [-amplitude, amplitude).
func noise(seed int64, amplitude float64) float64 {
	return (Seeded(seed) - 0.5) * 2 * amplitude
}
