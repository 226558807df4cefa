package animate

import "math"

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOutCubic applies smooth easing function
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Keyframe pins a value at a point in time
type Keyframe struct {
	Time  float64 `yaml:"time" json:"time"`
	Value float64 `yaml:"value" json:"value"`
}

// Track is a sorted list of keyframes
type Track []Keyframe

// At calculates the track value at a given time by interpolating between keyframes
func (tr Track) At(t float64) float64 {
	if len(tr) == 0 {
		return 0
	}

	// If before first keyframe, use first keyframe
	if t <= tr[0].Time {
		return tr[0].Value
	}

	// If after last keyframe, use last keyframe
	last := tr[len(tr)-1]
	if t >= last.Time {
		return last.Value
	}

	// Find surrounding keyframes
	var prev, next Keyframe
	for i := 0; i < len(tr)-1; i++ {
		if t >= tr[i].Time && t < tr[i+1].Time {
			prev, next = tr[i], tr[i+1]
			break
		}
	}

	delta := next.Time - prev.Time
	if delta == 0 {
		return next.Value
	}

	return Lerp(prev.Value, next.Value, EaseInOutCubic((t-prev.Time)/delta))
}
