// internal/utils/math.go
package utils

import "math"

// Vec2 — двумерный вектор в мировых единицах арены.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) LenSq() float64       { return v.X*v.X + v.Y*v.Y }

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalized returns a unit vector, or the zero vector for zero input.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen ограничивает длину вектора значением max.
func (v Vec2) ClampLen(max float64) Vec2 {
	if v.Len() > max {
		return v.Normalized().Scale(max)
	}
	return v
}

// Heading returns the "up" axis of an object rotated by deg degrees
// counter-clockwise. Zero degrees faces +Y.
func Heading(deg float64) Vec2 {
	rad := DegToRad(deg)
	return Vec2{-math.Sin(rad), math.Cos(rad)}
}

// DegToRad переводит градусы в радианы.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt ограничивает целое v диапазоном [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в градусах в диапазон [0, 360)
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleOf is the inverse of Heading: the rotation in degrees whose forward
// axis points along v. A zero vector yields 0.
func AngleOf(v Vec2) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(-v.X, v.Y) * 180 / math.Pi
}
