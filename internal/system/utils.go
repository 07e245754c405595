// internal/system/utils.go
package system

import (
	"cmp"
	"slices"

	"tank-arena/internal/component"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"
)

// sortedIDs возвращает ключи хранилища по возрастанию, чтобы порядок
// обработки не зависел от обхода map.
func sortedIDs[V any](store map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Overlaps checks two colliders placed at aPos and bPos.
func Overlaps(aPos utils.Vec2, a *component.Collider, bPos utils.Vec2, b *component.Collider) bool {
	switch {
	case a.IsBox() && b.IsBox():
		d := aPos.Sub(bPos)
		return abs(d.X) <= a.HalfExtents.X+b.HalfExtents.X && abs(d.Y) <= a.HalfExtents.Y+b.HalfExtents.Y
	case a.IsBox():
		return circleBox(bPos, b.Radius, aPos, a.HalfExtents)
	case b.IsBox():
		return circleBox(aPos, a.Radius, bPos, b.HalfExtents)
	default:
		r := a.Radius + b.Radius
		return aPos.Sub(bPos).LenSq() <= r*r
	}
}

// CircleTouches reports whether a circle at center overlaps the collider.
func CircleTouches(center utils.Vec2, radius float64, pos utils.Vec2, col *component.Collider) bool {
	if col.IsBox() {
		return circleBox(center, radius, pos, col.HalfExtents)
	}
	r := radius + col.Radius
	return center.Sub(pos).LenSq() <= r*r
}

func circleBox(center utils.Vec2, radius float64, boxPos, half utils.Vec2) bool {
	closest := utils.Vec2{
		X: utils.Clamp(center.X, boxPos.X-half.X, boxPos.X+half.X),
		Y: utils.Clamp(center.Y, boxPos.Y-half.Y, boxPos.Y+half.Y),
	}
	return center.Sub(closest).LenSq() <= radius*radius
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func compareByCategory(first component.Category) func(a, b contact) int {
	return func(a, b contact) int {
		if (a.category == first) != (b.category == first) {
			if a.category == first {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.id, b.id)
	}
}
