package scene

import "math"

// Circle places item i of n on a ring of radius r in the XY plane.
func Circle(i, n int, r float64) Vec3 {
	angle := float64(i) / float64(n) * 2 * math.Pi
	return Vec3{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
}

// FlatCircle places item i of n on a ring of radius r in the XZ plane.
func FlatCircle(i, n int, r float64) Vec3 {
	angle := float64(i) / float64(n) * 2 * math.Pi
	return Vec3{X: math.Cos(angle) * r, Z: math.Sin(angle) * r}
}

// Grid places item i on a centered grid with the given column count.
func Grid(i, n, cols int, spacing float64) Vec3 {
	if cols <= 0 {
		cols = 1
	}
	rows := (n + cols - 1) / cols
	col := i % cols
	row := i / cols
	return Vec3{
		X: (float64(col) - float64(cols-1)/2) * spacing,
		Y: (float64(rows-1)/2 - float64(row)) * spacing,
	}
}

// Jitter offsets v by up to amount on every axis.
func Jitter(r Rand, v Vec3, amount float64) Vec3 {
	if amount == 0 {
		return v
	}
	return Vec3{
		X: v.X + (r.Float64()*2-1)*amount,
		Y: v.Y + (r.Float64()*2-1)*amount,
		Z: v.Z + (r.Float64()*2-1)*amount,
	}
}

// RandomPair picks a source and destination from anchors. With two or more
// anchors the two are distinct.
func RandomPair(r Rand, anchors []Vec3) (Vec3, Vec3) {
	switch len(anchors) {
	case 0:
		return Vec3{}, Vec3{}
	case 1:
		return anchors[0], anchors[0]
	}
	a := r.Intn(len(anchors))
	b := r.Intn(len(anchors) - 1)
	if b >= a {
		b++
	}
	return anchors[a], anchors[b]
}
