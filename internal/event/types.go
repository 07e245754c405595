// internal/event/types.go
package event

const (
	BulletFired        EventType = "BulletFired"        // Танк выстрелил (одиночный или веер)
	TankHit            EventType = "TankHit"            // Пуля попала во вражеский танк, до урона
	TankDamaged        EventType = "TankDamaged"        // Урон применён, танк оглушён
	ShieldAbsorbed     EventType = "ShieldAbsorbed"     // Щит поглотил попадание
	ShieldBroken       EventType = "ShieldBroken"       // Пуля уничтожила объект щита
	ShieldExpired      EventType = "ShieldExpired"      // Щит истёк по времени
	BulletDestroyed    EventType = "BulletDestroyed"    // Пуля уничтожена по любой причине
	ExplosionDetonated EventType = "ExplosionDetonated" // Взрыв разрывной пули
	PowerUpSpawned     EventType = "PowerUpSpawned"
	PowerUpCollected   EventType = "PowerUpCollected"
	PowerUpExpired     EventType = "PowerUpExpired"
	ScoreChanged       EventType = "ScoreChanged"
	MatchWon           EventType = "MatchWon"
	MatchReset         EventType = "MatchReset"
)
