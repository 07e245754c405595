// internal/component/visual.go
package component

// Visual — временный визуальный эффект (взрыв, вспышка подбора).
type Visual struct {
	Kind      string
	Scale     float64
	StartedAt float64
	ExpiresAt float64
}

// Progress returns how far the effect is through its lifetime, in [0, 1].
func (v *Visual) Progress(now float64) float64 {
	span := v.ExpiresAt - v.StartedAt
	if span <= 0 {
		return 1
	}
	p := (now - v.StartedAt) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
